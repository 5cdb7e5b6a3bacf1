package tmux

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atomicstack/tmux-fzy/internal/logging/events"
)

// SessionName derives the session name for a directory: its last path
// component.
func SessionName(dir string) string {
	return filepath.Base(filepath.Clean(dir))
}

// Launcher issues the single tmux operation that binds a confirmed pick to a
// session. The environment probes are injectable so the decision matrix is
// testable without a server.
type Launcher struct {
	client        *Client
	serverRunning func() (bool, error)
	insideTmux    func() bool
}

// NewLauncher returns a Launcher backed by the real environment probes.
func NewLauncher(client *Client) *Launcher {
	return &Launcher{
		client:        client,
		serverRunning: ServerRunning,
		insideTmux:    InsideTmux,
	}
}

// Launch connects the terminal to the session for dir, creating the session
// when it does not exist yet. Repeating a launch for the same directory
// reuses the session instead of creating a second one.
func (l *Launcher) Launch(ctx context.Context, dir string) error {
	name := SessionName(dir)
	running, err := l.serverRunning()
	if err != nil {
		return err
	}
	inside := l.insideTmux()

	switch {
	case !running && !inside:
		events.Session.Create(name, dir, false)
		return l.client.NewSession(ctx, name, dir, false)
	case running && !inside:
		has, err := l.client.HasSession(ctx, name)
		if err != nil {
			return err
		}
		if has {
			events.Session.Attach(name)
			return l.client.AttachSession(ctx, name)
		}
		events.Session.Create(name, dir, false)
		return l.client.NewSession(ctx, name, dir, false)
	case running && inside:
		has, err := l.client.HasSession(ctx, name)
		if err != nil {
			return err
		}
		if !has {
			events.Session.Create(name, dir, true)
			if err := l.client.NewSession(ctx, name, dir, true); err != nil {
				return err
			}
		}
		events.Session.Switch(name)
		return l.client.SwitchClient(ctx, name)
	}
	return fmt.Errorf("$TMUX is set but no tmux server process is running")
}
