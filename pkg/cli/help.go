package cli

import (
	"context"
	"fmt"
	"regexp"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/numstack/numctl/pkg/errdefs"
	"github.com/numstack/numctl/pkg/numfn"
	"github.com/numstack/numctl/pkg/schema"
)

func (s *shell) helpCommand() *cli.Command {
	return &cli.Command{
		Name:            "help",
		Usage:           "List commands, or show one command's signature and synopsis.",
		HideHelp:        true,
		SkipFlagParsing: true,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return &errdefs.ArgumentError{Msg: "help takes at most one topic"}
			}
			return s.printHelp(cmd.Args().First())
		},
	}
}

// printHelp with an empty topic lists every command. A topic naming a
// command shows its detail; anything else is tried as a filter pattern.
func (s *shell) printHelp(topic string) error {
	if topic == "" {
		return s.listCommands(schema.Names())
	}
	if entry, ok := schema.Lookup(topic); ok {
		return s.commandDetail(topic, entry)
	}

	re, err := regexp.Compile(topic)
	if err != nil {
		return s.unknownCommand(topic)
	}
	var matched []string
	for _, name := range schema.Names() {
		if re.MatchString(name) {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return s.unknownCommand(topic)
	}
	return s.listCommands(matched)
}

func (s *shell) listCommands(names []string) error {
	tw := tabwriter.NewWriter(s.stdout, 2, 4, 2, ' ', 0)
	for _, name := range names {
		entry, _ := schema.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, entry.Signature())
	}
	return tw.Flush()
}

func (s *shell) commandDetail(name string, entry schema.Entry) error {
	fmt.Fprintf(s.stdout, "usage: numctl %s %s\n", name, entry.Signature())
	if fn, err := numfn.Library().Resolve(name); err == nil && fn.Doc != "" {
		fmt.Fprintf(s.stdout, "\n%s\n", fn.Doc)
	}
	return nil
}
