package window

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/quicknav/internal/input"
	"github.com/atomicstack/quicknav/internal/logging"
	"github.com/atomicstack/quicknav/internal/menu"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "quicknav.log"))
	t.Cleanup(func() { logging.Configure("") })
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, Config{})
	if g.width != DefaultWidth || g.height != DefaultHeight {
		t.Fatalf("expected default size, got %dx%d", g.width, g.height)
	}
	if got := g.Driver().Stack().Top().ID(); got != menu.RootID {
		t.Fatalf("expected root screen, got %s", got)
	}
	if _, err := NewGame(Config{RootMenu: "missing"}); err == nil {
		t.Fatalf("expected error for unknown root menu")
	}
}

func TestGameRetainsFrame(t *testing.T) {
	g := newTestGame(t, Config{})
	g.Driver().Tick(input.Batch{})
	if g.renderer.frame == nil || g.renderer.frame != g.Driver().Frame() {
		t.Fatalf("expected renderer to hold the driver frame")
	}
	first := g.renderer.frame.Columns[0].Buttons[0]
	if first.Rect.X != 24 || first.Rect.Y != 64 {
		t.Fatalf("expected first button at 24,64, got %d,%d", first.Rect.X, first.Rect.Y)
	}
}

func TestGameDrainsActionResults(t *testing.T) {
	g := newTestGame(t, Config{Verbose: true})
	d := g.Driver()
	d.Tick(input.Batch{Keys: []input.Key{input.KeyArrowDown, input.KeyEnter, input.KeyArrowDown, input.KeyEnter, input.KeyArrowDown, input.KeyEnter}})
	g.drain()
	if got := d.Normalizer().Threshold(); got != 0.20 {
		t.Fatalf("expected threshold 0.20, got %v", got)
	}
	if g.info == "" {
		t.Fatalf("expected info message")
	}
	if g.quit {
		t.Fatalf("expected game to keep running")
	}
}

func TestGameQuitAction(t *testing.T) {
	g := newTestGame(t, Config{})
	g.Driver().Tick(input.Batch{Keys: []input.Key{input.KeyEnter}})
	g.drain()
	if !g.quit || g.Driver().Active() {
		t.Fatalf("expected play to tear the menu down")
	}
	if g.renderer.frame != nil {
		t.Fatalf("expected frame cleared")
	}
}

func TestGameActionError(t *testing.T) {
	g := newTestGame(t, Config{Handler: func(menu.Selection) interface{} {
		return menu.ActionResult{Err: errors.New("boom")}
	}})
	g.Driver().Tick(input.Batch{Keys: []input.Key{input.KeyEnter}})
	g.drain()
	if g.err != "boom" || g.quit {
		t.Fatalf("expected error recorded without quitting, got %q", g.err)
	}
}

func TestGameWindowTitle(t *testing.T) {
	g := newTestGame(t, Config{})
	g.Driver().Tick(input.Batch{Keys: []input.Key{input.KeyArrowDown, input.KeyEnter, input.KeyArrowDown, input.KeyArrowDown, input.KeyEnter}})
	if got := g.windowTitle(); got != "quicknav: Settings › Difficulty" {
		t.Fatalf("expected difficulty breadcrumb, got %q", got)
	}
	g.Driver().Teardown()
	if got := g.windowTitle(); got != "quicknav" {
		t.Fatalf("expected bare title after teardown, got %q", got)
	}
}
