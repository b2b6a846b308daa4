package events

import "github.com/atomicstack/menu-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Key(key string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Query(query string, match int) {
	logging.Trace("filter.query", map[string]interface{}{"query": query, "match": match})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}
