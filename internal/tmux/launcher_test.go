package tmux

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func fakeLauncher(client *Client, running, inside bool) *Launcher {
	return &Launcher{
		client:        client,
		serverRunning: func() (bool, error) { return running, nil },
		insideTmux:    func() bool { return inside },
	}
}

func TestSessionName(t *testing.T) {
	cases := []struct {
		dir, want string
	}{
		{"/home/u/Music", "Music"},
		{"/home/u/proj/", "proj"},
		{"/", "/"},
	}
	for _, tc := range cases {
		if got := SessionName(tc.dir); got != tc.want {
			t.Fatalf("SessionName(%q) = %q, want %q", tc.dir, got, tc.want)
		}
	}
}

func TestLaunchNoServerOutsideTmux(t *testing.T) {
	runner := &fakeRunner{t: t, specs: []cmdSpec{{
		name: "tmux",
		args: []string{"new-session", "-s", "Music", "-c", "/home/u/Music"},
		exit: 0,
	}}}
	client := &Client{bin: "tmux", run: runner.run}
	if err := fakeLauncher(client, false, false).Launch(context.Background(), "/home/u/Music"); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	runner.assertDone()
}

func TestLaunchAttachesExistingSession(t *testing.T) {
	runner := &fakeRunner{t: t, specs: []cmdSpec{
		{name: "tmux", args: []string{"has-session", "-t", "Music"}, exit: 0},
		{name: "tmux", args: []string{"attach-session", "-t", "Music"}, exit: 0},
	}}
	client := &Client{bin: "tmux", run: runner.run}
	if err := fakeLauncher(client, true, false).Launch(context.Background(), "/home/u/Music"); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	runner.assertDone()
}

func TestLaunchCreatesWhenServerLacksSession(t *testing.T) {
	runner := &fakeRunner{t: t, specs: []cmdSpec{
		{name: "tmux", args: []string{"has-session", "-t", "Music"}, exit: 1},
		{name: "tmux", args: []string{"new-session", "-s", "Music", "-c", "/home/u/Music"}, exit: 0},
	}}
	client := &Client{bin: "tmux", run: runner.run}
	if err := fakeLauncher(client, true, false).Launch(context.Background(), "/home/u/Music"); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	runner.assertDone()
}

func TestLaunchSwitchesInsideTmux(t *testing.T) {
	runner := &fakeRunner{t: t, specs: []cmdSpec{
		{name: "tmux", args: []string{"has-session", "-t", "Music"}, exit: 0},
		{name: "tmux", args: []string{"switch-client", "-t", "Music"}, exit: 0},
	}}
	client := &Client{bin: "tmux", run: runner.run}
	if err := fakeLauncher(client, true, true).Launch(context.Background(), "/home/u/Music"); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	runner.assertDone()
}

func TestLaunchCreatesDetachedThenSwitchesInsideTmux(t *testing.T) {
	runner := &fakeRunner{t: t, specs: []cmdSpec{
		{name: "tmux", args: []string{"has-session", "-t", "Music"}, exit: 1},
		{name: "tmux", args: []string{"new-session", "-d", "-s", "Music", "-c", "/home/u/Music"}, exit: 0},
		{name: "tmux", args: []string{"switch-client", "-t", "Music"}, exit: 0},
	}}
	client := &Client{bin: "tmux", run: runner.run}
	if err := fakeLauncher(client, true, true).Launch(context.Background(), "/home/u/Music"); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	runner.assertDone()
}

func TestLaunchSecondRunSwitchesInsteadOfCreating(t *testing.T) {
	// After the detached create above, the session exists: a repeat launch
	// must only switch.
	runner := &fakeRunner{t: t, specs: []cmdSpec{
		{name: "tmux", args: []string{"has-session", "-t", "Music"}, exit: 0},
		{name: "tmux", args: []string{"switch-client", "-t", "Music"}, exit: 0},
	}}
	client := &Client{bin: "tmux", run: runner.run}
	if err := fakeLauncher(client, true, true).Launch(context.Background(), "/home/u/Music"); err != nil {
		t.Fatalf("Launch() error: %v", err)
	}
	runner.assertDone()
}

func TestLaunchInsideTmuxWithoutServer(t *testing.T) {
	runner := &fakeRunner{t: t}
	client := &Client{bin: "tmux", run: runner.run}
	err := fakeLauncher(client, false, true).Launch(context.Background(), "/home/u/Music")
	if err == nil {
		t.Fatal("Launch() expected error for $TMUX without a server")
	}
	if !strings.Contains(err.Error(), "no tmux server") {
		t.Fatalf("Launch() error = %q", err)
	}
	runner.assertDone()
}

func TestLaunchPropagatesProbeFailure(t *testing.T) {
	probeErr := errors.New("proc scan failed")
	launcher := &Launcher{
		client:        &Client{bin: "tmux"},
		serverRunning: func() (bool, error) { return false, probeErr },
		insideTmux:    func() bool { return false },
	}
	if err := launcher.Launch(context.Background(), "/home/u/Music"); !errors.Is(err, probeErr) {
		t.Fatalf("Launch() error = %v, want probe failure", err)
	}
}
