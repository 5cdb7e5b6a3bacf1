package events

import "github.com/atomicstack/tmux-fzy/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(code int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code})
}

func (AppTracer) ColorsFallback(path string, err error) {
	logging.Trace("app.colors-fallback", map[string]interface{}{"path": path, "error": err.Error()})
}
