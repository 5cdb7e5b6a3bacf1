package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/atomicstack/tmux-fzy/internal/store"
)

func (rt *runtime) delCommand() *cli.Command {
	return &cli.Command{
		Name:      "del",
		Usage:     "remove directories from the candidate cache",
		ArgsUsage: "PATH...",
		Action:    rt.del,
	}
}

// del drops each argument from the cache. Paths that were never registered
// are ignored, so deleting is idempotent.
func (rt *runtime) del(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("del: at least one PATH is required", exitUsage)
	}
	st, err := store.Load(rt.cfg.CacheFile)
	if err != nil {
		return err
	}
	if removed := st.Remove(args); len(removed) == 0 {
		return nil
	}
	return st.Save()
}
