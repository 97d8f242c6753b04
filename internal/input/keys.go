package input

import "github.com/gdamore/tcell/v2"

// KeyFromTcell maps a tcell key event onto the normalizer's key set.
func KeyFromTcell(ev *tcell.EventKey) Key {
	if ev == nil {
		return KeyOther
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyArrowUp
	case tcell.KeyDown:
		return KeyArrowDown
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	}
	return KeyOther
}
