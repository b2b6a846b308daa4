package events

import "github.com/atomicstack/menu-control/internal/logging"

// NavTracer records navigation transitions of the menu session.
type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Enter(menuName, itemName string) {
	logging.Trace("nav.enter", map[string]interface{}{
		"menu": menuName,
		"item": itemName,
	})
}

func (NavTracer) Back(menuName string, ok bool) {
	logging.Trace("nav.back", map[string]interface{}{"menu": menuName, "ok": ok})
}

func (NavTracer) Cursor(menuName string, index int) {
	logging.Trace("nav.cursor", map[string]interface{}{"menu": menuName, "index": index})
}

func (NavTracer) Select(menuName, itemName string) {
	logging.Trace("nav.select", map[string]interface{}{"menu": menuName, "item": itemName})
}

func (NavTracer) Value(itemName string, value float64) {
	logging.Trace("nav.value", map[string]interface{}{"item": itemName, "value": value})
}

func (NavTracer) Reset() {
	logging.Trace("nav.reset", nil)
}
