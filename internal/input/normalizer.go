package input

import "github.com/atomicstack/quicknav/internal/logging/events"

// DefaultStickThreshold is the stick deflection that must be crossed for an
// analog axis to emit an intent.
const DefaultStickThreshold float32 = 0.10

// Normalizer turns raw device input into intents. It owns the per-device
// axis trackers, so one Normalizer must be fed every batch of a session.
type Normalizer struct {
	threshold float32
	devices   *Devices
}

// NewNormalizer builds a normalizer using the given stick threshold. Values
// <= 0 fall back to DefaultStickThreshold.
func NewNormalizer(threshold float32) *Normalizer {
	n := &Normalizer{devices: NewDevices()}
	n.SetThreshold(threshold)
	return n
}

// SetThreshold changes the stick threshold at runtime. Only the magnitude is
// used; zero resets to the default.
func (n *Normalizer) SetThreshold(threshold float32) {
	if threshold < 0 {
		threshold = -threshold
	}
	if threshold == 0 {
		threshold = DefaultStickThreshold
	}
	n.threshold = threshold
}

// Threshold returns the active stick threshold.
func (n *Normalizer) Threshold() float32 {
	return n.threshold
}

// Devices exposes the tracker table.
func (n *Normalizer) Devices() *Devices {
	return n.devices
}

// Normalize converts one tick of raw input into intents in arrival order:
// keys first, then digital buttons per pad, then axis changes.
func (n *Normalizer) Normalize(batch Batch) []Intent {
	var intents []Intent

	for _, pad := range batch.Pads {
		if n.devices.Ensure(pad.ID) {
			events.Input.Connect(int(pad.ID))
		}
	}

	for _, key := range batch.Keys {
		if intent, ok := keyIntent(key); ok {
			intents = append(intents, intent)
		}
	}

	for _, pad := range batch.Pads {
		if intent, ok := buttonIntent(pad.JustPressed); ok {
			intents = append(intents, intent)
		}
	}

	for _, evt := range batch.Axes {
		tracker, ok := n.devices.Get(evt.Device)
		if !ok {
			events.Input.Drop(int(evt.Device), evt.Axis.String())
			continue
		}
		current := evt.Value
		previous := tracker.Record(evt.Axis, current)
		if intent, ok := n.axisIntent(evt.Axis, current, previous); ok {
			events.Input.Cross(int(evt.Device), evt.Axis.String(), previous, current, intent.String())
			intents = append(intents, intent)
		}
	}

	for _, id := range batch.Disconnected {
		if n.devices.Remove(id) {
			events.Input.Disconnect(int(id))
		}
	}

	return intents
}

func keyIntent(key Key) (Intent, bool) {
	switch key {
	case KeyArrowDown:
		return IntentDown, true
	case KeyArrowUp:
		return IntentUp, true
	case KeyEnter:
		return IntentSelect, true
	case KeyBackspace:
		return IntentBack, true
	}
	return 0, false
}

// buttonIntent evaluates the pressed set in fixed priority order; only the
// first match counts.
func buttonIntent(pressed Buttons) (Intent, bool) {
	switch {
	case pressed.Has(ButtonDPadDown):
		return IntentDown, true
	case pressed.Has(ButtonDPadUp):
		return IntentUp, true
	case pressed.Has(ButtonDPadRight):
		return IntentBack, true
	case pressed.Has(ButtonSouth) || pressed.Has(ButtonWest):
		return IntentSelect, true
	case pressed.Has(ButtonEast) || pressed.Has(ButtonNorth):
		return IntentBack, true
	}
	return 0, false
}

func (n *Normalizer) axisIntent(axis Axis, current, previous float32) (Intent, bool) {
	switch axis {
	case AxisLeftStickY, AxisRightStickY:
		if CrossThreshold(current, previous, n.threshold, true) {
			return IntentUp, true
		}
		if CrossThreshold(current, previous, -n.threshold, false) {
			return IntentDown, true
		}
	case AxisLeftStickX, AxisRightStickX:
		// X only navigates back, matching the d-pad.
		if CrossThreshold(current, previous, -n.threshold, false) {
			return IntentBack, true
		}
	}
	return 0, false
}

// CrossThreshold reports whether the value moved across v during this tick.
// A positive crossing rises from below v to above it; a negative crossing
// falls from above v to below it.
func CrossThreshold(current, previous, v float32, positive bool) bool {
	if positive {
		return current > v && v > previous
	}
	return current < v && v < previous
}
