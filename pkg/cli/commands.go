package cli

import (
	"context"
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/numstack/numctl/pkg/errdefs"
	"github.com/numstack/numctl/pkg/numfn"
	"github.com/numstack/numctl/pkg/schema"
	"github.com/numstack/numctl/pkg/serializer"
)

// commands generates one subcommand per declared library function, plus
// the help and version commands.
func (s *shell) commands() []*cli.Command {
	names := schema.Names()
	out := make([]*cli.Command, 0, len(names)+2)
	for _, name := range names {
		out = append(out, s.functionCommand(name))
	}
	out = append(out, s.helpCommand(), s.versionCommand())
	return out
}

// functionCommand wraps one library function. Argument parsing belongs
// to the dispatcher, so flag parsing is disabled: tokens like -1 or
// k=-2 must reach it untouched.
func (s *shell) functionCommand(name string) *cli.Command {
	var usage string
	if fn, err := numfn.Library().Resolve(name); err == nil {
		usage = fn.Doc
	}
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		HideHelp:        true,
		SkipFlagParsing: true,
		Action: func(_ context.Context, cmd *cli.Command) error {
			out, err := s.dispatcher.Dispatch(name, cmd.Args().Slice())
			if err != nil {
				return err
			}
			if err := serializer.New(s.stdout, s.cfg).Write(out); err != nil {
				return fmt.Errorf("output failed: %w", err)
			}
			return nil
		},
	}
}

// unknownCommand builds the not-found error, with a did-you-mean
// suggestion when a declared name is close enough.
func (s *shell) unknownCommand(name string) error {
	best, bestDist := "", 3
	for _, candidate := range schema.Names() {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return &errdefs.NotFoundError{Name: name, Suggestion: best}
}
