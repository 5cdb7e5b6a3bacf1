package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-fzy/internal/theme"
	"github.com/atomicstack/tmux-fzy/internal/ui/state"
)

// Outcome is the terminal state of a picker run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSelected
	OutcomeCancelled
)

// Model implements the Bubble Tea model for the directory picker.
type Model struct {
	list   *state.List
	input  textinput.Model
	styles *theme.Styles
	width  int
	height int

	outcome   Outcome
	selection string
}

// NewModel initialises the picker over the candidate set. activeSessions
// names the tmux sessions running when the picker starts; rows whose session
// name appears there are marked with a star.
func NewModel(candidates []string, activeSessions []string, styles *theme.Styles) *Model {
	if styles == nil {
		styles = theme.Default()
	}
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = "(type to search)"
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *styles.FilterPlaceholder
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Focus()
	return &Model{
		list:   state.NewList(candidates, activeSessions),
		input:  ti,
		styles: styles,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.EnsureCursorVisible(m.maxVisibleRows())
		return m, nil
	}
	// Everything else (cursor blink ticks) belongs to the text input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Outcome reports how the picker run ended.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Selection returns the confirmed path once the outcome is OutcomeSelected.
func (m *Model) Selection() (string, bool) {
	if m.outcome != OutcomeSelected {
		return "", false
	}
	return m.selection, true
}

// syncInput mirrors the authoritative query into the text input widget.
func (m *Model) syncInput() {
	m.input.SetValue(m.list.Query)
	m.input.CursorEnd()
}
