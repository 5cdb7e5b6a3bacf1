package main

import (
	"context"
	"os"

	"github.com/atomicstack/tmux-fzy/internal/cli"
)

// version is stamped at release time via -ldflags.
var version = "dev"

func main() {
	os.Exit(cli.Run(context.Background(), os.Args, version))
}
