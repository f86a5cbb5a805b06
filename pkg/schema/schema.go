// Package schema declares, per command, how each positional and keyword
// argument is coerced from text. The table is data: the dispatcher
// interprets it, the help and docs generators render it.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/numstack/numctl/pkg/coerce"
)

// Entry describes the argument surface of one command. Positional arity
// is a tagged variant: either Positional (fixed, ordered) or Variadic
// (one coercer consumes all remaining tokens); never both.
type Entry struct {
	// Positional holds the ordered fixed-arity coercers.
	Positional []coerce.Coercer
	// Variadic, when set, consumes all remaining tokens as one batch.
	Variadic *coerce.Variadic
	// Keywords maps declared optional argument names to their coercers.
	Keywords map[string]coerce.Coercer
	// Universal lists the names accepted from the universal keyword
	// vocabulary.
	Universal []string
}

// Universal is the fixed, closed vocabulary of keyword options shared
// across many commands. It is not user-extensible.
var Universal = map[string]coerce.Coercer{
	"where":    coerce.BoolList,
	"axes":     coerce.TupleList,
	"axis":     coerce.IntList,
	"keepdims": coerce.Bool,
	"casting":  coerce.String,
	"order":    coerce.String,
	"dtype":    coerce.String,
	"subok":    coerce.Bool,
}

// UniversalKeys lists the universal vocabulary in its canonical order.
var UniversalKeys = []string{"where", "axes", "axis", "keepdims", "casting", "order", "dtype", "subok"}

// Lookup returns the schema entry for a command name.
func Lookup(name string) (Entry, bool) {
	e, ok := commands[name]
	return e, ok
}

// Names returns all command names in sorted order.
func Names() []string {
	out := make([]string, 0, len(commands))
	for name := range commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Count returns the number of declared commands.
func Count() int { return len(commands) }

// KeywordCoercer resolves a keyword name against the entry's declared
// keywords and its accepted universal names.
func (e Entry) KeywordCoercer(name string) (coerce.Coercer, bool) {
	if c, ok := e.Keywords[name]; ok {
		return c, true
	}
	for _, u := range e.Universal {
		if u == name {
			return Universal[name], true
		}
	}
	return coerce.Coercer{}, false
}

// Signature renders the argument synopsis, e.g.
// "<matrix> <matrix> [axis=<intlist>]".
func (e Entry) Signature() string {
	var parts []string
	if e.Variadic != nil {
		parts = append(parts, fmt.Sprintf("<%s>", e.Variadic.Name))
	} else {
		for _, c := range e.Positional {
			parts = append(parts, fmt.Sprintf("<%s>", c.Name))
		}
	}

	kwNames := make([]string, 0, len(e.Keywords))
	for name := range e.Keywords {
		kwNames = append(kwNames, name)
	}
	sort.Strings(kwNames)
	for _, name := range kwNames {
		parts = append(parts, fmt.Sprintf("%s=<%s>", name, e.Keywords[name].Name))
	}

	for _, name := range e.Universal {
		parts = append(parts, fmt.Sprintf("[%s=<%s>]", name, Universal[name].Name))
	}
	return strings.Join(parts, " ")
}
