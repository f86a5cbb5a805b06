// Package cli implements the numctl command-line shell: global toggle
// flags, one generated subcommand per library function, help and version
// commands, and the mapping from the error taxonomy to process exit
// codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/numstack/numctl/pkg/config"
	"github.com/numstack/numctl/pkg/dispatch"
	"github.com/numstack/numctl/pkg/docs"
	"github.com/numstack/numctl/pkg/errdefs"
)

// shell carries the state shared by the root command and every
// subcommand action for one invocation.
type shell struct {
	cfg        *config.Config
	dispatcher *dispatch.Dispatcher
	stdout     io.Writer
	stderr     io.Writer
}

// Run executes one invocation and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ERROR [numctl]: %v\n", err)
		return errdefs.ExitInvalid
	}

	sh := &shell{
		cfg:        cfg,
		dispatcher: dispatch.New(cfg),
		stdout:     stdout,
		stderr:     stderr,
	}
	sh.setupLogging()

	err = sh.root().Run(ctx, args)
	return sh.report(err)
}

// report prints the error once, at the outermost level, and maps it to
// an exit code. Exceptions mode panics instead so the failure surfaces
// with a stack trace.
func (s *shell) report(err error) int {
	if err == nil {
		return errdefs.ExitOK
	}
	if s.cfg.Exceptions {
		panic(err)
	}
	if !s.cfg.Quiet {
		fmt.Fprintf(s.stderr, "ERROR [numctl]: %v\n", err)
	}
	return errdefs.ExitCode(err)
}

func (s *shell) setupLogging() {
	level := slog.LevelWarn
	switch {
	case s.cfg.Debug:
		level = slog.LevelDebug
	case !s.cfg.Warning:
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(s.stderr, &slog.HandlerOptions{Level: level})))
}

func (s *shell) root() *cli.Command {
	return &cli.Command{
		Name:     "numctl",
		Usage:    "numerical computing from the command line",
		HideHelp: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "warning", Aliases: []string{"w"}, Usage: "toggle warning output"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "toggle error reporting"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "toggle debug logging"},
			&cli.BoolFlag{Name: "exception", Aliases: []string{"e"}, Usage: "toggle panicking on errors"},
			&cli.BoolFlag{Name: "flatten", Aliases: []string{"f"}, Usage: "separate result rows with ';' instead of newlines"},
			&cli.BoolFlag{Name: "help", Aliases: []string{"h"}, Usage: "show the command list"},
			&cli.BoolFlag{Name: "version", Aliases: []string{"v"}, Usage: "show version information"},
			&cli.StringFlag{Name: "fmt", Usage: "number format verb for results"},
			&cli.BoolFlag{Name: "makedocs", Usage: "write markdown reference pages and exit"},
		},
		Before:       s.applyFlags,
		OnUsageError: s.usageError,
		Commands:     s.commands(),
		Action:       s.rootAction,
	}
}

// usageError converts flag parsing failures into the argument error
// class so they exit with the invalid-input code.
func (s *shell) usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &errdefs.ArgumentError{Msg: err.Error()}
}

// applyFlags overlays command-line toggles on the loaded configuration.
// Each toggle flips the configured value rather than forcing it on, so
// -w disables warnings when the config file or defaults enable them.
func (s *shell) applyFlags(_ context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("warning") {
		s.cfg.Warning = !s.cfg.Warning
	}
	if cmd.Bool("quiet") {
		s.cfg.Quiet = !s.cfg.Quiet
	}
	if cmd.Bool("debug") {
		s.cfg.Debug = !s.cfg.Debug
	}
	if cmd.Bool("exception") {
		s.cfg.Exceptions = !s.cfg.Exceptions
	}
	if cmd.Bool("flatten") {
		s.cfg.Newline = ";"
	}
	if f := cmd.String("fmt"); f != "" {
		s.cfg.Format = f
	}
	s.setupLogging()
	return nil, nil
}

// rootAction handles everything that is not a registered subcommand: the
// bare invocation, the informational flags, and unknown command names.
func (s *shell) rootAction(_ context.Context, cmd *cli.Command) error {
	switch {
	case cmd.Bool("makedocs"):
		dir := "docs"
		if err := docs.Generate(dir); err != nil {
			return err
		}
		fmt.Fprintf(s.stdout, "wrote markdown reference to %s/\n", dir)
		return nil
	case cmd.Bool("version"):
		return s.printVersion()
	case cmd.Bool("help"):
		return s.printHelp("")
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		fmt.Fprintln(s.stderr, "usage: numctl [-wqdefhv] <command> [arguments]")
		return &errdefs.NoArgsError{}
	}
	return s.unknownCommand(args[0])
}
