package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/atomicstack/tmux-fzy/internal/store"
)

func (rt *runtime) addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "register directories as session candidates",
		ArgsUsage: "PATH...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "mindepth",
				Usage: "smallest directory depth to register, relative to each PATH",
			},
			&cli.IntFlag{
				Name:  "maxdepth",
				Usage: "largest directory depth to register, relative to each PATH",
			},
		},
		Action: rt.add,
	}
}

// add expands each argument between the depth bounds and persists the grown
// list. A failing argument aborts the whole invocation before anything is
// written.
func (rt *runtime) add(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("add: at least one PATH is required", exitUsage)
	}
	minDepth := cmd.Int("mindepth")
	maxDepth := cmd.Int("maxdepth")
	if minDepth < 0 || maxDepth < minDepth {
		return cli.Exit(fmt.Sprintf("add: invalid depth bounds %d..%d", minDepth, maxDepth), exitUsage)
	}

	st, err := store.Load(rt.cfg.CacheFile)
	if err != nil {
		return err
	}
	added, err := st.Add(args, minDepth, maxDepth)
	if err != nil {
		return err
	}
	if len(added) == 0 {
		return nil
	}
	return st.Save()
}
