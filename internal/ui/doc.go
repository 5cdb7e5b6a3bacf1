// Package ui contains the Bubble Tea program that powers the directory picker.
// The Model type focuses on message orchestration; dedicated helpers own key
// input and rendering, and internal/ui/state owns the query, the ranked
// entries, and the selection cursor.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key presses route through handleKeyMsg (internal/ui/input.go), which
//     mutates the state.List and quits the program once an outcome is known.
//   - Every other message reaches the embedded text input so the query cursor
//     keeps blinking.
//
// The text input widget never edits the query itself: state.List is the single
// owner, and the widget is resynced after each mutation. That keeps the query
// semantics (append, backspace, clear, and the cursor-reset rules) in one
// testable place.
//
// The picker performs no file or process I/O. Candidates, resolved styles, and
// the set of live session names are all supplied up front; the selected path
// is read off the final model once the program returns.
package ui
