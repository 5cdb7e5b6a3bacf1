package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/atomicstack/tmux-fzy/internal/logging/events"
)

// Colors holds the configurable ANSI palette indices (0-15) used by the
// picker theme.
type Colors struct {
	Fg        int `toml:"fg"`
	Border    int `toml:"border"`
	Inactive  int `toml:"inactive"`
	Active    int `toml:"active"`
	Selection int `toml:"selection"`
}

// DefaultColors is the palette used when no colors file is present: white
// text and border, dark gray unmatched candidates, red matched runes, green
// selected row.
func DefaultColors() Colors {
	return Colors{Fg: 15, Border: 15, Inactive: 8, Active: 1, Selection: 2}
}

// LoadColors reads the optional colors file. The picker must never refuse to
// start over cosmetics, so every failure path falls back to the defaults: a
// missing or unparseable file yields the full default palette, and an
// out-of-range value falls back key by key.
func LoadColors(path string) Colors {
	defaults := DefaultColors()
	data, err := os.ReadFile(path)
	if err != nil {
		return defaults
	}
	loaded := defaults
	if err := toml.Unmarshal(data, &loaded); err != nil {
		events.App.ColorsFallback(path, err)
		return defaults
	}
	return clampColors(loaded, defaults)
}

func clampColors(c, defaults Colors) Colors {
	if c.Fg < 0 || c.Fg > 15 {
		c.Fg = defaults.Fg
	}
	if c.Border < 0 || c.Border > 15 {
		c.Border = defaults.Border
	}
	if c.Inactive < 0 || c.Inactive > 15 {
		c.Inactive = defaults.Inactive
	}
	if c.Active < 0 || c.Active > 15 {
		c.Active = defaults.Active
	}
	if c.Selection < 0 || c.Selection > 15 {
		c.Selection = defaults.Selection
	}
	return c
}
