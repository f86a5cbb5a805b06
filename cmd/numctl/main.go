package main

import (
	"context"
	"os"

	"github.com/numstack/numctl/pkg/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args, os.Stdout, os.Stderr))
}
