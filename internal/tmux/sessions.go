package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atomicstack/tmux-fzy/internal/logging/events"
)

// ListSessions returns the names of all live sessions. A missing server
// yields an empty list, not an error.
func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	cmd := c.run(ctx, c.bin, "list-sessions", "-F", "#{session_name}")
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.ToLower(strings.TrimSpace(string(out)))
		if msg == "" {
			msg = strings.ToLower(strings.TrimSpace(err.Error()))
		}
		if strings.Contains(msg, "no server") ||
			strings.Contains(msg, "no such file") ||
			strings.Contains(msg, "error connecting to") ||
			strings.Contains(msg, "no sessions") {
			return nil, nil
		}
		return nil, wrapTmuxErr("list-sessions", err, out)
	}
	var sessions []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			sessions = append(sessions, name)
		}
	}
	return sessions, nil
}

// HasSession reports whether a session with the given name exists.
func (c *Client) HasSession(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, fmt.Errorf("session name is required")
	}
	cmd := c.run(ctx, c.bin, "has-session", "-t", name)
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return false, nil
		}
		return false, wrapTmuxErr("has-session", err, nil)
	}
	return true, nil
}

// NewSession creates a session named name rooted at dir. Attached creation
// hands the controlling terminal to tmux until the client detaches; detached
// creation returns as soon as the session exists.
func (c *Client) NewSession(ctx context.Context, name, dir string, detached bool) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name is required")
	}
	if detached {
		out, err := c.run(ctx, c.bin, "new-session", "-d", "-s", name, "-c", dir).CombinedOutput()
		if err != nil {
			return wrapTmuxErr("new-session", err, out)
		}
		return nil
	}
	return c.runAttached(ctx, "new-session", "-s", name, "-c", dir)
}

// AttachSession attaches the controlling terminal to an existing session.
func (c *Client) AttachSession(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name is required")
	}
	return c.runAttached(ctx, "attach-session", "-t", name)
}

// SwitchClient moves the attached tmux client onto the named session.
func (c *Client) SwitchClient(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name is required")
	}
	out, err := c.run(ctx, c.bin, "switch-client", "-t", name).CombinedOutput()
	if err != nil {
		return wrapTmuxErr("switch-client", err, out)
	}
	return nil
}

// KillSession terminates the named session.
func (c *Client) KillSession(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("session name is required")
	}
	events.Session.Kill(name)
	out, err := c.run(ctx, c.bin, "kill-session", "-t", name).CombinedOutput()
	if err != nil {
		return wrapTmuxErr("kill-session", err, out)
	}
	return nil
}

// runAttached wires the command to the terminal and waits for it to finish.
func (c *Client) runAttached(ctx context.Context, args ...string) error {
	cmd := c.run(ctx, c.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return wrapTmuxErr(args[0], err, nil)
	}
	return nil
}
