package window

import (
	"github.com/atomicstack/quicknav/internal/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyFromEbiten maps an ebiten key onto the normalizer's key set.
func KeyFromEbiten(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return input.KeyArrowUp
	case ebiten.KeyArrowDown:
		return input.KeyArrowDown
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return input.KeyEnter
	case ebiten.KeyBackspace:
		return input.KeyBackspace
	}
	return input.KeyOther
}
