// Package app wires the collaborators together for one picker run: cache,
// colors, tmux session list in; selected directory out to the launcher.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/atomicstack/tmux-fzy/internal/config"
	"github.com/atomicstack/tmux-fzy/internal/logging"
	"github.com/atomicstack/tmux-fzy/internal/store"
	"github.com/atomicstack/tmux-fzy/internal/theme"
	"github.com/atomicstack/tmux-fzy/internal/tmux"
	"github.com/atomicstack/tmux-fzy/internal/ui"
)

// ErrCancelled reports that the user left the picker without confirming a
// selection. The CLI maps it to the conventional interrupted exit status.
var ErrCancelled = errors.New("cancelled")

// Run executes the interactive picker and, on a confirmed selection, issues
// exactly one session operation for it. Everything the picker needs is
// loaded up front; no file or process I/O happens while it runs.
func Run(ctx context.Context, cfg config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	styles := theme.Resolve(config.LoadColors(cfg.ColorsFile))
	st, err := store.Load(cfg.CacheFile)
	if err != nil {
		return fmt.Errorf("load candidate cache: %w", err)
	}

	client, err := tmux.NewClient("")
	if err != nil {
		return err
	}
	sessions, err := client.ListSessions(ctx)
	if err != nil {
		// Star markers are display-only; a failed listing never blocks
		// the picker.
		logging.Error(err)
		sessions = nil
	}

	model := ui.NewModel(st.Paths(), sessions, styles)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return ErrCancelled
	}
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}
	picker, ok := final.(*ui.Model)
	if !ok {
		return fmt.Errorf("unexpected picker model %T", final)
	}
	path, ok := picker.Selection()
	if !ok {
		return ErrCancelled
	}
	return tmux.NewLauncher(client).Launch(ctx, path)
}
