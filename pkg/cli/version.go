package cli

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// version is embedded at build time:
//
//	go build -ldflags="-X 'github.com/numstack/numctl/pkg/cli.version=1.0.0'"
var version = "dev"

func (s *shell) versionCommand() *cli.Command {
	return &cli.Command{
		Name:            "version",
		Usage:           "Show numctl and backend library versions.",
		HideHelp:        true,
		SkipFlagParsing: true,
		Action: func(_ context.Context, _ *cli.Command) error {
			return s.printVersion()
		},
	}
}

func (s *shell) printVersion() error {
	fmt.Fprintf(s.stdout, "numctl %s (gonum %s)\n", version, gonumVersion())
	return nil
}

func gonumVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == "gonum.org/v1/gonum" {
			return dep.Version
		}
	}
	return "unknown"
}
