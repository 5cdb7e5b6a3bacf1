// Package cli assembles the tmux-fzy command tree. The bare invocation runs
// the interactive picker; the add, list and del subcommands manage the
// candidate cache it reads.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/atomicstack/tmux-fzy/internal/app"
	"github.com/atomicstack/tmux-fzy/internal/config"
	"github.com/atomicstack/tmux-fzy/internal/logging"
	"github.com/atomicstack/tmux-fzy/internal/logging/events"
)

// Process exit codes. Leaving the picker without a selection is a normal
// outcome and gets the conventional interrupted status, so scripts can tell
// "picked nothing" from "failed".
const (
	exitOK        = 0
	exitError     = 1
	exitUsage     = 2
	exitCancelled = 130
)

// Run executes the command line and returns the process exit code.
func Run(ctx context.Context, args []string, version string) int {
	return exitCode(New(version).Run(ctx, args))
}

// New assembles the root command. Errors are mapped to exit codes by Run,
// so the default handler that exits from inside the command tree is
// disabled.
func New(version string) *cli.Command {
	rt := &runtime{}
	root := &cli.Command{
		Name:    "tmux-fzy",
		Usage:   "fuzzy-pick a project directory and jump to its tmux session",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cache-file",
				Usage:   "read and write the candidate cache at `FILE`",
				Sources: cli.EnvVars("TMUX_FZY_CACHE_FILE"),
			},
			&cli.StringFlag{
				Name:    "colors-file",
				Usage:   "read the color configuration from `FILE`",
				Sources: cli.EnvVars("TMUX_FZY_COLORS_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "append log entries to `FILE` (logging is off without it)",
				Sources: cli.EnvVars("TMUX_FZY_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "emit JSON trace entries to the log file",
				Sources: cli.EnvVars("TMUX_FZY_DEBUG"),
			},
		},
		Before: rt.before,
		Action: rt.pick,
		Commands: []*cli.Command{
			rt.addCommand(),
			rt.listCommand(),
			rt.delCommand(),
		},
		HideHelpCommand: true,
		ExitErrHandler:  func(context.Context, *cli.Command, error) {},
	}
	root.OnUsageError = usageError
	for _, cmd := range root.Commands {
		cmd.OnUsageError = usageError
	}
	return root
}

// runtime carries the configuration resolved by the root Before hook into
// the command actions.
type runtime struct {
	cfg config.Config
}

func (rt *runtime) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Resolve(
		cmd.String("cache-file"),
		cmd.String("colors-file"),
		cmd.String("log-file"),
		cmd.Bool("debug"),
	)
	if err != nil {
		return ctx, err
	}
	logging.Configure(cfg.LogFile)
	logging.SetTraceEnabled(cfg.Debug)
	rt.cfg = cfg
	traceStartup(cfg, cmd.Args().Slice())
	return ctx, nil
}

// pick is the zero-argument action: run the picker, then hand the confirmed
// directory to the session launcher.
func (rt *runtime) pick(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return cli.Exit(fmt.Sprintf("unknown command %q", cmd.Args().First()), exitUsage)
	}
	return app.Run(ctx, rt.cfg)
}

// usageError folds flag and argument parse failures into the usage exit
// status instead of the default help dump.
func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return cli.Exit(err.Error(), exitUsage)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		events.App.Exit(exitOK)
		return exitOK
	case errors.Is(err, app.ErrCancelled):
		events.App.Exit(exitCancelled)
		return exitCancelled
	}
	logging.Error(err)
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		events.App.Exit(coder.ExitCode())
		return coder.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	events.App.Exit(exitError)
	return exitError
}

// traceStartup records the runtime context the flags and environment
// resolved to.
func traceStartup(cfg config.Config, args []string) {
	payload := map[string]interface{}{
		"args":       args,
		"cacheFile":  cfg.CacheFile,
		"colorsFile": cfg.ColorsFile,
		"logFile":    cfg.LogFile,
		"debug":      cfg.Debug,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	events.App.Start(payload)
}
