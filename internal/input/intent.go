package input

// Intent is a device independent navigation signal.
type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentSelect
	IntentBack
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentSelect:
		return "select"
	case IntentBack:
		return "back"
	default:
		return "unknown"
	}
}
