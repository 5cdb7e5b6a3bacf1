// Package state tracks the picker's interaction state: the query string,
// the ranked entries derived from it, and the selection cursor.
package state

import (
	"github.com/atomicstack/tmux-fzy/internal/matcher"
	"github.com/atomicstack/tmux-fzy/internal/tmux"
)

// Entry is a single row of the ranked list.
type Entry struct {
	Path      string
	Positions []int
	Active    bool
}

// List owns the registered candidates and everything derived from them.
// Candidates keep their load order; ranking never mutates the backing set.
type List struct {
	candidates []string
	active     map[string]struct{}

	Query          string
	Entries        []Entry
	Cursor         int
	ViewportOffset int
}

// NewList builds the picker state over the full candidate set. activeSessions
// names the tmux sessions that are currently running, so entries whose
// session name matches can be flagged.
func NewList(candidates []string, activeSessions []string) *List {
	active := make(map[string]struct{}, len(activeSessions))
	for _, name := range activeSessions {
		active[name] = struct{}{}
	}
	l := &List{
		candidates: append([]string(nil), candidates...),
		active:     active,
	}
	l.recompute()
	return l
}

// Total reports the size of the unfiltered candidate set.
func (l *List) Total() int {
	return len(l.candidates)
}

// Selected returns the path under the cursor, or false when the ranked list
// is empty.
func (l *List) Selected() (string, bool) {
	if len(l.Entries) == 0 || l.Cursor < 0 || l.Cursor >= len(l.Entries) {
		return "", false
	}
	return l.Entries[l.Cursor].Path, true
}

// recompute rebuilds the ranked entries from scratch for the current query.
// A change in list size sends the cursor back to the top; otherwise the
// cursor keeps its position, clamped to the new bounds.
func (l *List) recompute() {
	prev := len(l.Entries)
	results := matcher.Rank(l.Query, l.candidates)
	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		_, active := l.active[tmux.SessionName(r.Text)]
		entries = append(entries, Entry{
			Path:      r.Text,
			Positions: r.Positions,
			Active:    active,
		})
	}
	l.Entries = entries
	if len(l.Entries) != prev {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.clampCursor()
}

func (l *List) clampCursor() {
	if len(l.Entries) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Entries) {
		l.Cursor = len(l.Entries) - 1
	}
}
