package window

import (
	"github.com/atomicstack/quicknav/internal/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var standardButtons = []struct {
	button  ebiten.StandardGamepadButton
	pressed input.Button
}{
	{ebiten.StandardGamepadButtonLeftBottom, input.ButtonDPadDown},
	{ebiten.StandardGamepadButtonLeftTop, input.ButtonDPadUp},
	{ebiten.StandardGamepadButtonLeftLeft, input.ButtonDPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.ButtonDPadRight},
	{ebiten.StandardGamepadButtonRightBottom, input.ButtonSouth},
	{ebiten.StandardGamepadButtonRightRight, input.ButtonEast},
	{ebiten.StandardGamepadButtonRightLeft, input.ButtonWest},
	{ebiten.StandardGamepadButtonRightTop, input.ButtonNorth},
	{ebiten.StandardGamepadButtonCenterRight, input.ButtonStart},
	{ebiten.StandardGamepadButtonCenterLeft, input.ButtonSelect},
}

// ebiten reports vertical stick axes with down as positive; invert marks the
// axes flipped so positive Y means up.
var standardAxes = []struct {
	axis   ebiten.StandardGamepadAxis
	mapped input.Axis
	invert bool
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.AxisLeftStickX, false},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.AxisLeftStickY, true},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.AxisRightStickX, false},
	{ebiten.StandardGamepadAxisRightStickVertical, input.AxisRightStickY, true},
}

type axisKey struct {
	device input.DeviceID
	axis   input.Axis
}

// EbitenSource polls ebiten once per frame and produces a Batch. Axis values
// are reported only when they change, so the batch mirrors an event stream.
type EbitenSource struct {
	gamepads []ebiten.GamepadID
	known    map[ebiten.GamepadID]struct{}
	last     map[axisKey]float32
	keys     []ebiten.Key
}

// NewEbitenSource creates a poller with no known devices.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{
		known: make(map[ebiten.GamepadID]struct{}),
		last:  make(map[axisKey]float32),
	}
}

// Poll must be called from ebiten's Update.
func (s *EbitenSource) Poll() input.Batch {
	var batch input.Batch

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		batch.Keys = append(batch.Keys, KeyFromEbiten(k))
	}

	for id := range s.known {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(s.known, id)
			for key := range s.last {
				if key.device == input.DeviceID(id) {
					delete(s.last, key)
				}
			}
			batch.Disconnected = append(batch.Disconnected, input.DeviceID(id))
		}
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		s.known[id] = struct{}{}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			batch.Pads = append(batch.Pads, input.Pad{ID: input.DeviceID(id)})
			continue
		}
		var pressed input.Buttons
		for _, b := range standardButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				pressed = pressed.With(b.pressed)
			}
		}
		batch.Pads = append(batch.Pads, input.Pad{ID: input.DeviceID(id), JustPressed: pressed})

		for _, a := range standardAxes {
			value := float32(ebiten.StandardGamepadAxisValue(id, a.axis))
			if a.invert {
				value = -value
			}
			key := axisKey{device: input.DeviceID(id), axis: a.mapped}
			if prev, ok := s.last[key]; ok && prev == value {
				continue
			}
			s.last[key] = value
			batch.Axes = append(batch.Axes, input.AxisEvent{Device: input.DeviceID(id), Axis: a.mapped, Value: value})
		}
	}

	return batch
}
