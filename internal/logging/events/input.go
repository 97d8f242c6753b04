package events

import "github.com/atomicstack/quicknav/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) Connect(device int) {
	logging.Trace("input.connect", map[string]interface{}{"device": device})
}

func (InputTracer) Disconnect(device int) {
	logging.Trace("input.disconnect", map[string]interface{}{"device": device})
}

// Cross records an analog threshold crossing that produced an intent.
func (InputTracer) Cross(device int, axis string, previous, current float32, intent string) {
	logging.Trace("input.cross", map[string]interface{}{
		"device":   device,
		"axis":     axis,
		"previous": previous,
		"current":  current,
		"intent":   intent,
	})
}

// Drop records an axis event discarded because its device has no tracker yet.
func (InputTracer) Drop(device int, axis string) {
	logging.Trace("input.drop", map[string]interface{}{"device": device, "axis": axis})
}
