package tmux

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// InsideTmux reports whether this process runs under a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// ServerRunning reports whether a tmux server process exists. tmux renames
// its server process to "tmux: server", so the scan matches on the prefix.
func ServerRunning() (bool, error) {
	procs, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("listing processes: %w", err)
	}
	for _, p := range procs {
		if strings.HasPrefix(p.Executable(), "tmux") {
			return true, nil
		}
	}
	return false, nil
}
