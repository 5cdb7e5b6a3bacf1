// Package tmux shells out to the tmux binary for every session operation.
// The process runner is injectable so the command surface is testable
// without a live server.
package tmux

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client issues tmux commands through the local binary.
type Client struct {
	bin string
	run func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewClient resolves the tmux binary and returns a Client.
func NewClient(tmuxPath string) (*Client, error) {
	if tmuxPath == "" {
		var err error
		tmuxPath, err = exec.LookPath("tmux")
		if err != nil {
			return nil, fmt.Errorf("tmux not found in PATH: %w", err)
		}
	}
	return &Client{bin: tmuxPath, run: exec.CommandContext}, nil
}

// Binary reports the resolved tmux binary path.
func (c *Client) Binary() string {
	return c.bin
}

// WithExec allows tests to override the exec implementation.
func (c *Client) WithExec(fn func(context.Context, string, ...string) *exec.Cmd) {
	c.run = fn
}

// wrapTmuxErr folds whatever diagnostic text the failed command produced
// into the returned error.
func wrapTmuxErr(cmdName string, err error, combined []byte) error {
	detail := ""
	if exitErr, ok := err.(*exec.ExitError); ok {
		detail = strings.TrimSpace(string(exitErr.Stderr))
	}
	if detail == "" {
		detail = strings.TrimSpace(string(combined))
	}
	if detail == "" {
		return fmt.Errorf("tmux %s: %w", cmdName, err)
	}
	return fmt.Errorf("tmux %s: %w (%s)", cmdName, err, detail)
}
