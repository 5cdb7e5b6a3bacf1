// Package table lays out the numbered candidate listing printed by the list
// command.
package table

import (
	"strconv"
	"strings"
)

// Numbered renders one line per path, prefixed with a right-aligned 1-based
// index column so the listing stays aligned past ten entries.
func Numbered(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	width := cellWidth(label(len(paths)))
	out := make([]string, len(paths))
	for i, path := range paths {
		var b strings.Builder
		entry := label(i + 1)
		writeSpaces(&b, width-cellWidth(entry))
		b.WriteString(entry)
		b.WriteByte(' ')
		b.WriteString(path)
		out[i] = b.String()
	}
	return out
}

func label(index int) string {
	return strconv.Itoa(index) + ":"
}

func cellWidth(text string) int {
	return len([]rune(text))
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		b.WriteByte(' ')
	}
}
