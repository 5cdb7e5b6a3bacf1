package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m *Model, key tea.KeyType) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	for _, r := range text {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func assertQuits(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message, got %T", cmd())
	}
}

func TestEnterConfirmsSelection(t *testing.T) {
	m := NewModel([]string{"/w/alpha", "/w/beta"}, nil, nil)
	press(t, m, tea.KeyDown)
	cmd := press(t, m, tea.KeyEnter)
	assertQuits(t, cmd)
	if m.Outcome() != OutcomeSelected {
		t.Fatalf("expected selected outcome, got %v", m.Outcome())
	}
	path, ok := m.Selection()
	if !ok || path != "/w/beta" {
		t.Fatalf("expected /w/beta selected, got %q %v", path, ok)
	}
}

func TestEnterOnEmptyListCancels(t *testing.T) {
	m := NewModel(nil, nil, nil)
	cmd := press(t, m, tea.KeyEnter)
	assertQuits(t, cmd)
	if m.Outcome() != OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", m.Outcome())
	}
	if _, ok := m.Selection(); ok {
		t.Fatalf("cancelled run must not expose a selection")
	}
}

func TestEnterAfterFilteringEverythingOutCancels(t *testing.T) {
	m := NewModel([]string{"/w/alpha"}, nil, nil)
	typeText(t, m, "zz")
	cmd := press(t, m, tea.KeyEnter)
	assertQuits(t, cmd)
	if m.Outcome() != OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", m.Outcome())
	}
}

func TestEscapeCancels(t *testing.T) {
	m := NewModel([]string{"/w/alpha"}, nil, nil)
	typeText(t, m, "alp")
	cmd := press(t, m, tea.KeyEsc)
	assertQuits(t, cmd)
	if m.Outcome() != OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", m.Outcome())
	}
}

func TestInterruptCancels(t *testing.T) {
	m := NewModel([]string{"/w/alpha"}, nil, nil)
	cmd := press(t, m, tea.KeyCtrlC)
	assertQuits(t, cmd)
	if m.Outcome() != OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", m.Outcome())
	}
}

func TestTypingReranksAndResetsCursor(t *testing.T) {
	m := NewModel([]string{
		"/home/u/Music",
		"/home/u/Movies",
		"/home/u/Code/proj",
	}, nil, nil)
	press(t, m, tea.KeyDown)
	typeText(t, m, "mu")
	if len(m.list.Entries) != 2 {
		t.Fatalf("expected 2 matches for mu, got %v", m.list.Entries)
	}
	if m.list.Entries[0].Path != "/home/u/Music" || m.list.Entries[1].Path != "/home/u/Movies" {
		t.Fatalf("unexpected ranking: %v", m.list.Entries)
	}
	if m.list.Cursor != 0 {
		t.Fatalf("expected cursor reset after typing, got %d", m.list.Cursor)
	}
	if m.input.Value() != "mu" {
		t.Fatalf("expected text input in sync, got %q", m.input.Value())
	}

	cmd := press(t, m, tea.KeyEnter)
	assertQuits(t, cmd)
	path, ok := m.Selection()
	if !ok || path != "/home/u/Music" {
		t.Fatalf("expected best match confirmed, got %q %v", path, ok)
	}
}

func TestBackspaceWidensList(t *testing.T) {
	m := NewModel([]string{
		"/home/u/Music",
		"/home/u/Movies",
		"/home/u/Code/proj",
	}, nil, nil)
	typeText(t, m, "mu")
	press(t, m, tea.KeyBackspace)
	if m.list.Query != "m" {
		t.Fatalf("expected query m, got %q", m.list.Query)
	}
	// A bare m still only reaches the tails of Music and Movies; the deep
	// proj path stays below the reject threshold.
	if len(m.list.Entries) != 2 {
		t.Fatalf("expected 2 matches for m, got %v", m.list.Entries)
	}
	if m.input.Value() != "m" {
		t.Fatalf("expected text input in sync, got %q", m.input.Value())
	}
	press(t, m, tea.KeyBackspace)
	if len(m.list.Entries) != 3 {
		t.Fatalf("expected full list on empty query, got %v", m.list.Entries)
	}
}

func TestBackspaceOnEmptyQueryIsNoop(t *testing.T) {
	m := NewModel([]string{"/w/alpha"}, nil, nil)
	press(t, m, tea.KeyBackspace)
	if m.list.Query != "" {
		t.Fatalf("expected empty query, got %q", m.list.Query)
	}
	if m.Outcome() != OutcomeNone {
		t.Fatalf("expected picker still running")
	}
}

func TestCtrlUClearsQuery(t *testing.T) {
	m := NewModel([]string{"/w/alpha", "/w/beta"}, nil, nil)
	typeText(t, m, "alp")
	press(t, m, tea.KeyCtrlU)
	if m.list.Query != "" {
		t.Fatalf("expected cleared query, got %q", m.list.Query)
	}
	if len(m.list.Entries) != 2 {
		t.Fatalf("expected full list restored, got %v", m.list.Entries)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected text input cleared, got %q", m.input.Value())
	}
}

func TestSpaceJoinsQuery(t *testing.T) {
	m := NewModel([]string{"/w/alpha"}, nil, nil)
	typeText(t, m, "a b")
	if m.list.Query != "a b" {
		t.Fatalf("expected query with space, got %q", m.list.Query)
	}
}

func TestCursorKeys(t *testing.T) {
	m := NewModel([]string{"/w/a", "/w/b", "/w/c"}, nil, nil)
	press(t, m, tea.KeyUp)
	if m.list.Cursor != 0 {
		t.Fatalf("expected cursor clamped at top, got %d", m.list.Cursor)
	}
	press(t, m, tea.KeyDown)
	press(t, m, tea.KeyCtrlJ)
	if m.list.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.list.Cursor)
	}
	press(t, m, tea.KeyDown)
	if m.list.Cursor != 2 {
		t.Fatalf("expected cursor clamped at bottom, got %d", m.list.Cursor)
	}
	press(t, m, tea.KeyCtrlK)
	if m.list.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.list.Cursor)
	}
}

func TestAltRunesIgnored(t *testing.T) {
	m := NewModel([]string{"/w/alpha"}, nil, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	if m.list.Query != "" {
		t.Fatalf("expected alt-modified rune ignored, got %q", m.list.Query)
	}
}
