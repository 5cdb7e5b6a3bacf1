package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-fzy/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.cancel(events.CancelReasonInterrupt)
	case "esc":
		return m.cancel(events.CancelReasonEscape)
	case "enter":
		if path, ok := m.list.Selected(); ok {
			m.outcome = OutcomeSelected
			m.selection = path
			events.UI.Confirm(path)
			return m, tea.Quit
		}
		return m.cancel(events.CancelReasonEmpty)
	case "up", "ctrl+k":
		if m.list.MoveCursorUp() {
			m.list.EnsureCursorVisible(m.maxVisibleRows())
			events.UI.Cursor(m.list.Cursor)
		}
		return m, nil
	case "down", "ctrl+j":
		if m.list.MoveCursorDown() {
			m.list.EnsureCursorVisible(m.maxVisibleRows())
			events.UI.Cursor(m.list.Cursor)
		}
		return m, nil
	case "ctrl+u":
		if m.list.ClearQuery() {
			m.queryChanged()
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.list.DeleteRuneBackward() {
			m.queryChanged()
		}
		return m, nil
	case tea.KeySpace:
		if m.list.InsertText(" ") {
			m.queryChanged()
		}
		return m, nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return m, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return m, nil
			}
		}
		if m.list.InsertText(string(msg.Runes)) {
			m.queryChanged()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) cancel(reason events.CancelReason) (tea.Model, tea.Cmd) {
	m.outcome = OutcomeCancelled
	events.UI.Cancel(reason)
	return m, tea.Quit
}

func (m *Model) queryChanged() {
	m.syncInput()
	m.list.EnsureCursorVisible(m.maxVisibleRows())
	events.UI.QueryChanged(m.list.Query, len(m.list.Entries))
}
