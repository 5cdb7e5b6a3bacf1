package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-fzy/internal/ui/state"
)

// View implements tea.Model. Layout: query line with a right-aligned match
// counter, a rule, then the ranked rows that fit the current height.
func (m *Model) View() string {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
	lines := make([]string, 0, len(m.list.Entries)+2)
	lines = append(lines, m.headerLine())
	lines = append(lines, m.ruleLine())
	lines = append(lines, m.entryRows()...)
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine() string {
	query := m.input.View()
	counter := fmt.Sprintf("%d/%d", len(m.list.Entries), m.list.Total())
	if m.styles.Counter != nil {
		counter = m.styles.Counter.Render(counter)
	}
	if m.width <= 0 {
		return query + "  " + counter
	}
	gap := m.width - lipgloss.Width(query) - lipgloss.Width(counter)
	if gap < 1 {
		// Too narrow for the counter; the query wins.
		return truncateLine(query, m.width)
	}
	return query + strings.Repeat(" ", gap) + counter
}

func (m *Model) ruleLine() string {
	width := m.width
	if width <= 0 {
		width = 8
	}
	rule := strings.Repeat("─", width)
	if m.styles.Rule != nil {
		rule = m.styles.Rule.Render(rule)
	}
	return rule
}

func (m *Model) entryRows() []string {
	entries := m.list.Entries
	if len(entries) == 0 {
		return []string{m.emptyLine()}
	}
	start := 0
	if max := m.maxVisibleRows(); max > 0 && len(entries) > max {
		start = m.list.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+max > len(entries) {
			start = len(entries) - max
			m.list.ViewportOffset = start
		}
		entries = entries[start : start+max]
	}
	rows := make([]string, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, m.entryRow(entry, start+i == m.list.Cursor))
	}
	return rows
}

func (m *Model) emptyLine() string {
	msg := "(no entries)"
	if m.list.Query != "" {
		msg = fmt.Sprintf("No matches for %q", m.list.Query)
	}
	if m.styles.Item != nil {
		msg = m.styles.Item.Render(msg)
	}
	return truncateLine(msg, m.width)
}

// entryRow renders one candidate: selection indicator, active-session star,
// then the path with its matched runes emphasised.
func (m *Model) entryRow(entry state.Entry, selected bool) string {
	indicator := "  "
	if selected {
		indicator = "▌ "
		if m.styles.SelectedItemIndicator != nil {
			indicator = m.styles.SelectedItemIndicator.Render(indicator)
		}
	}
	star := "  "
	if entry.Active {
		star = "* "
		if m.styles.Star != nil {
			star = m.styles.Star.Render(star)
		}
	}
	return truncateLine(indicator+star+m.renderPath(entry, selected), m.width)
}

func (m *Model) renderPath(entry state.Entry, selected bool) string {
	base := m.styles.Item
	if selected {
		base = m.styles.SelectedItem
	}
	if len(entry.Positions) == 0 {
		return renderSegment(entry.Path, base)
	}
	matched := make(map[int]struct{}, len(entry.Positions))
	for _, p := range entry.Positions {
		matched[p] = struct{}{}
	}
	runes := []rune(entry.Path)
	var b strings.Builder
	for start := 0; start < len(runes); {
		_, isMatch := matched[start]
		end := start + 1
		for end < len(runes) {
			if _, ok := matched[end]; ok != isMatch {
				break
			}
			end++
		}
		style := base
		if isMatch {
			style = m.styles.ItemMatch
		}
		b.WriteString(renderSegment(string(runes[start:end]), style))
		start = end
	}
	return b.String()
}

func renderSegment(text string, style *lipgloss.Style) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// maxVisibleRows reports how many candidate rows fit below the query line
// and the rule. -1 means unbounded (no size information yet).
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	rows := m.height - 2
	if rows < 1 {
		return 1
	}
	return rows
}

func truncateLine(line string, width int) string {
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return truncate.StringWithTail(line, uint(width-1), "…")
}
