// Package dispatch turns a command name and raw argument tokens into a
// library call: it looks up the command's schema, coerces every token,
// pulls a missing positional from piped stdin, and invokes the function.
package dispatch

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/numstack/numctl/pkg/config"
	"github.com/numstack/numctl/pkg/errdefs"
	"github.com/numstack/numctl/pkg/numfn"
	"github.com/numstack/numctl/pkg/schema"
)

// keywordToken matches tokens of the form name=value. Anything else is a
// positional, so URLs with query strings stay intact.
var keywordToken = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)

// Dispatcher resolves and invokes commands. Stdin and Interactive are
// injectable so tests can simulate piped input.
type Dispatcher struct {
	Config *config.Config
	// Stdin is read for a missing positional argument when the process
	// is not attached to a terminal.
	Stdin io.Reader
	// Interactive reports whether stdin is a terminal. Piped input is
	// eligible as an argument source; terminal input is not.
	Interactive func() bool
}

// New returns a Dispatcher reading the process's real stdin.
func New(cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		Config:      cfg,
		Stdin:       os.Stdin,
		Interactive: stdinIsTerminal,
	}
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return true
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Dispatch runs one command with raw tokens and returns its result.
func (d *Dispatcher) Dispatch(name string, tokens []string) (any, error) {
	entry, ok := schema.Lookup(name)
	if !ok {
		return nil, &errdefs.NotFoundError{Name: name}
	}
	fn, err := numfn.Library().Resolve(name)
	if err != nil {
		return nil, err
	}

	positionals, kwargs, err := d.splitTokens(entry, tokens)
	if err != nil {
		return nil, err
	}
	args, err := d.coercePositionals(entry, positionals)
	if err != nil {
		return nil, err
	}

	slog.Debug("dispatching", "command", name, "args", len(args), "kwargs", len(kwargs))
	out, err := fn.Call(&numfn.CallContext{Config: d.Config, Args: args, Kwargs: kwargs})
	if err != nil {
		return nil, &errdefs.CallError{Command: name, Err: err}
	}
	return out, nil
}

// splitTokens separates positional tokens from keyword arguments and
// coerces the keyword values.
func (d *Dispatcher) splitTokens(entry schema.Entry, tokens []string) ([]string, map[string]any, error) {
	var positionals []string
	kwargs := make(map[string]any)
	for _, tok := range tokens {
		if !keywordToken.MatchString(tok) {
			positionals = append(positionals, tok)
			continue
		}
		key, value, _ := strings.Cut(tok, "=")
		coercer, ok := entry.KeywordCoercer(key)
		if !ok {
			return nil, nil, &errdefs.ArgumentError{Msg: fmt.Sprintf("unknown keyword argument '%s'", key)}
		}
		v, err := coercer.Fn(value)
		if err != nil {
			return nil, nil, err
		}
		kwargs[key] = v
	}
	return positionals, kwargs, nil
}

func (d *Dispatcher) coercePositionals(entry schema.Entry, positionals []string) ([]any, error) {
	if entry.Variadic != nil {
		v, err := entry.Variadic.Fn(positionals)
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	}

	if len(positionals) > len(entry.Positional) {
		return nil, &errdefs.ArgumentError{Msg: fmt.Sprintf(
			"expected %d positional arguments, got %d", len(entry.Positional), len(positionals))}
	}
	if len(positionals) < len(entry.Positional) {
		if tok, ok := d.readStdin(); ok {
			positionals = append(positionals, tok)
		}
	}
	if len(positionals) < len(entry.Positional) {
		missing := entry.Positional[len(positionals)].Name
		return nil, &errdefs.ArgumentError{Msg: fmt.Sprintf("missing positional argument <%s>", missing)}
	}

	args := make([]any, len(positionals))
	for i, tok := range positionals {
		v, err := entry.Positional[i].Fn(tok)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// readStdin consumes piped input as one token. Lines are joined with
// semicolons so multi-line matrix output from a previous invocation
// parses back as rows.
func (d *Dispatcher) readStdin() (string, bool) {
	if d.Stdin == nil || d.Interactive == nil || d.Interactive() {
		return "", false
	}
	var lines []string
	scanner := bufio.NewScanner(d.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("stdin read failed", "error", err)
		return "", false
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, ";"), true
}
