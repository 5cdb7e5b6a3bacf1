package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/atomicstack/tmux-fzy/internal/format/table"
	"github.com/atomicstack/tmux-fzy/internal/store"
)

func (rt *runtime) listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "print the registered candidate directories",
		Action: rt.list,
	}
}

func (rt *runtime) list(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return cli.Exit("list: takes no arguments", exitUsage)
	}
	st, err := store.Load(rt.cfg.CacheFile)
	if err != nil {
		return err
	}
	out := cmd.Root().Writer
	for _, line := range table.Numbered(st.Paths()) {
		fmt.Fprintln(out, line)
	}
	return nil
}
