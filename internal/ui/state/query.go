package state

// InsertText appends typed text to the query and re-ranks. The cursor always
// returns to the top entry after an insert, even when the list size is
// unchanged.
func (l *List) InsertText(text string) bool {
	if text == "" {
		return false
	}
	l.Query += text
	l.recompute()
	l.Cursor = 0
	l.ViewportOffset = 0
	return true
}

// DeleteRuneBackward removes the last rune of the query and re-ranks.
// No-op when the query is already empty.
func (l *List) DeleteRuneBackward() bool {
	if l.Query == "" {
		return false
	}
	runes := []rune(l.Query)
	l.Query = string(runes[:len(runes)-1])
	l.recompute()
	return true
}

// ClearQuery wipes the whole query in one step and re-ranks.
func (l *List) ClearQuery() bool {
	if l.Query == "" {
		return false
	}
	l.Query = ""
	l.recompute()
	return true
}
