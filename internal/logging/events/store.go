package events

import "github.com/atomicstack/tmux-fzy/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Loaded(path string, count int) {
	logging.Trace("store.load", map[string]interface{}{"path": path, "count": count})
}

func (StoreTracer) Added(paths []string) {
	logging.Trace("store.add", map[string]interface{}{"paths": paths})
}

func (StoreTracer) Removed(paths []string) {
	logging.Trace("store.remove", map[string]interface{}{"paths": paths})
}

func (StoreTracer) Saved(path string, count int) {
	logging.Trace("store.save", map[string]interface{}{"path": path, "count": count})
}
