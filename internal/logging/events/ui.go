package events

import "github.com/atomicstack/tmux-fzy/internal/logging"

type UITracer struct{}

type CancelReason string

const (
	CancelReasonEscape    CancelReason = "escape"
	CancelReasonInterrupt CancelReason = "interrupt"
	CancelReasonEmpty     CancelReason = "empty"
)

var UI = UITracer{}

func (UITracer) QueryChanged(query string, matches int) {
	logging.Trace("ui.query", map[string]interface{}{"query": query, "matches": matches})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Confirm(path string) {
	logging.Trace("ui.confirm", map[string]interface{}{"path": path})
}

func (UITracer) Cancel(reason CancelReason) {
	logging.Trace("ui.cancel", map[string]interface{}{"reason": string(reason)})
}
