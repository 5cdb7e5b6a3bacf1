package state

import "testing"

func TestMoveCursorClampsAtEnds(t *testing.T) {
	l := newTestList("/w/a", "/w/b", "/w/c")
	if l.MoveCursorUp() {
		t.Fatalf("expected no movement above the top")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
	if !l.MoveCursorDown() || !l.MoveCursorDown() {
		t.Fatalf("expected downward movement")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorDown() {
		t.Fatalf("expected no movement past the bottom")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", l.Cursor)
	}
	if !l.MoveCursorUp() {
		t.Fatalf("expected upward movement")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
}

func TestMoveCursorEmptyList(t *testing.T) {
	l := newTestList()
	if l.MoveCursorDown() || l.MoveCursorUp() {
		t.Fatalf("expected no movement on empty list")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor pinned to 0, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("/w/a", "/w/b", "/w/c", "/w/d", "/w/e")
	l.Cursor = 4
	l.ViewportOffset = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.Cursor = 1
	l.EnsureCursorVisible(3)
	if l.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", l.ViewportOffset)
	}
}
