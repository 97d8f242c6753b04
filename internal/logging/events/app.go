package events

import "github.com/atomicstack/quicknav/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(host string) {
	logging.Trace("app.stop", map[string]interface{}{"host": host})
}
