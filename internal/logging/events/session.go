package events

import "github.com/atomicstack/tmux-fzy/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Create(name, dir string, detached bool) {
	logging.Trace("session.create", map[string]interface{}{"name": name, "dir": dir, "detached": detached})
}

func (SessionTracer) Attach(name string) {
	logging.Trace("session.attach", map[string]interface{}{"name": name})
}

func (SessionTracer) Switch(name string) {
	logging.Trace("session.switch", map[string]interface{}{"name": name})
}

func (SessionTracer) Kill(name string) {
	logging.Trace("session.kill", map[string]interface{}{"name": name})
}
