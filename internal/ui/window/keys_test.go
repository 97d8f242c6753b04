package window

import (
	"testing"

	"github.com/atomicstack/quicknav/internal/input"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyFromEbiten(t *testing.T) {
	cases := map[ebiten.Key]input.Key{
		ebiten.KeyArrowUp:     input.KeyArrowUp,
		ebiten.KeyArrowDown:   input.KeyArrowDown,
		ebiten.KeyEnter:       input.KeyEnter,
		ebiten.KeyNumpadEnter: input.KeyEnter,
		ebiten.KeyBackspace:   input.KeyBackspace,
		ebiten.KeyA:           input.KeyOther,
		ebiten.KeyArrowLeft:   input.KeyOther,
	}
	for k, want := range cases {
		if got := KeyFromEbiten(k); got != want {
			t.Fatalf("expected %v for %v, got %v", want, k, got)
		}
	}
}
