package theme

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/tmux-fzy/internal/config"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemMatch             *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Star                  *lipgloss.Style
	Counter               *lipgloss.Style
	Rule                  *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
}

// Resolve builds the style set from the configured ANSI palette indices.
// Unmatched candidate text takes the inactive color, matched runes the active
// color, and the selected row the selection color.
func Resolve(colors config.Colors) *Styles {
	fg := ansi(colors.Fg)
	border := ansi(colors.Border)
	inactive := ansi(colors.Inactive)
	active := ansi(colors.Active)
	selection := ansi(colors.Selection)

	return &Styles{
		Item: ptr(
			lipgloss.NewStyle().Foreground(inactive),
		),
		ItemMatch: ptr(
			lipgloss.NewStyle().Foreground(active).Bold(true),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(selection).Bold(true),
		),
		SelectedItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(selection),
		),
		Star: ptr(
			lipgloss.NewStyle().Foreground(active),
		),
		Counter: ptr(
			lipgloss.NewStyle().Foreground(inactive),
		),
		Rule: ptr(
			lipgloss.NewStyle().Foreground(border),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(fg),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(fg).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(inactive),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(ansi(0)).Background(fg).Blink(true),
		),
	}
}

// Default exposes the style set for the default palette.
func Default() *Styles {
	return Resolve(config.DefaultColors())
}

func ansi(index int) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(index))
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
