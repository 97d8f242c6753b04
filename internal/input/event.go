package input

// Key is a keyboard key as seen by the normalizer. Hosts translate their own
// key codes into this set; anything unrecognised becomes KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyBackspace
)

// Button is one digital gamepad button in standard layout naming.
type Button uint16

const (
	ButtonDPadUp Button = 1 << iota
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonSouth
	ButtonEast
	ButtonWest
	ButtonNorth
	ButtonStart
	ButtonSelect
)

// Buttons is a set of buttons that were just pressed during a tick.
type Buttons uint16

// Has reports whether b is in the set.
func (s Buttons) Has(b Button) bool {
	return uint16(s)&uint16(b) != 0
}

// With returns the set with b added.
func (s Buttons) With(b Button) Buttons {
	return s | Buttons(b)
}

// PressedButtons builds a set from the supplied buttons.
func PressedButtons(buttons ...Button) Buttons {
	var s Buttons
	for _, b := range buttons {
		s = s.With(b)
	}
	return s
}

// Axis identifies one analog channel of a gamepad.
type Axis int

const (
	AxisLeftStickX Axis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
	AxisLeftTrigger
	AxisRightTrigger
)

func (a Axis) String() string {
	switch a {
	case AxisLeftStickX:
		return "left-stick-x"
	case AxisLeftStickY:
		return "left-stick-y"
	case AxisRightStickX:
		return "right-stick-x"
	case AxisRightStickY:
		return "right-stick-y"
	case AxisLeftTrigger:
		return "left-trigger"
	case AxisRightTrigger:
		return "right-trigger"
	default:
		return "unknown"
	}
}

// DeviceID identifies a connected gamepad.
type DeviceID int

// Pad reports a connected gamepad and the buttons that went down this tick.
// A pad with no presses still counts as present.
type Pad struct {
	ID          DeviceID
	JustPressed Buttons
}

// AxisEvent carries the new value of one axis. Values are in [-1, 1] with
// positive Y meaning the stick is pushed up.
type AxisEvent struct {
	Device DeviceID
	Axis   Axis
	Value  float32
}

// Batch collects all raw input observed during one tick.
type Batch struct {
	Keys         []Key
	Pads         []Pad
	Axes         []AxisEvent
	Disconnected []DeviceID
}

// Empty reports whether the batch carries no events at all.
func (b Batch) Empty() bool {
	return len(b.Keys) == 0 && len(b.Pads) == 0 && len(b.Axes) == 0 && len(b.Disconnected) == 0
}
