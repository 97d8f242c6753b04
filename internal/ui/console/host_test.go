package console

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/quicknav/internal/logging"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/atomicstack/quicknav/internal/ui"
	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T, cfg Config) (*Host, tcell.SimulationScreen) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "quicknav.log"))
	t.Cleanup(func() { logging.Configure("") })
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(100, 30)
	h, err := New(screen, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h.Start()
	return h, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func cellAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y) //nolint:staticcheck
	return r
}

func TestHostPaintsRootOnStart(t *testing.T) {
	h, screen := newTestHost(t, Config{})
	frame := h.Driver().Frame()
	if frame == nil || len(frame.Columns) != 1 {
		t.Fatalf("expected one column after start")
	}
	col := frame.Columns[0]
	if got := cellAt(screen, col.Rect.X, col.Rect.Y); got != 'M' {
		t.Fatalf("expected title cell 'M', got %q", got)
	}
	b := col.Buttons[0]
	if got := cellAt(screen, b.Rect.X, b.Rect.Y); got != '▸' {
		t.Fatalf("expected selection marker, got %q", got)
	}
	if got := cellAt(screen, b.Rect.X+2, b.Rect.Y); got != 'P' {
		t.Fatalf("expected label cell 'P', got %q", got)
	}
}

func TestHostRejectsUnknownRoot(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if _, err := New(screen, Config{RootMenu: "nope"}); err == nil {
		t.Fatalf("expected error for unknown root menu")
	}
}

func TestHostKeysNavigate(t *testing.T) {
	h, screen := newTestHost(t, Config{})
	d := h.Driver()
	h.HandleEvent(key(tcell.KeyDown))
	h.HandleEvent(key(tcell.KeyEnter))
	if got := d.Stack().Top().ID(); got != menu.SettingsID {
		t.Fatalf("expected settings on top, got %s", got)
	}
	col := d.Frame().Columns[1]
	if got := cellAt(screen, col.Rect.X, col.Rect.Y); got != []rune(col.Title)[0] {
		t.Fatalf("expected settings title painted, got %q", got)
	}
	h.HandleEvent(key(tcell.KeyBackspace2))
	if got := d.Stack().Depth(); got != 1 {
		t.Fatalf("expected depth 1, got %d", got)
	}
}

func TestHostTypeToJump(t *testing.T) {
	h, _ := newTestHost(t, Config{})
	if !h.HandleEvent(char('s')) {
		t.Fatalf("expected host to keep running")
	}
	if got := h.Driver().Selections().Get(menu.RootID); got != 1 {
		t.Fatalf("expected settings row, got %d", got)
	}
}

func TestHostQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{char('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		h, _ := newTestHost(t, Config{})
		if h.HandleEvent(ev) {
			t.Fatalf("expected %v to stop the host", ev.Name())
		}
		if !h.Quit() || h.Driver().Active() {
			t.Fatalf("expected driver torn down after %v", ev.Name())
		}
	}
}

func TestHostQuitAction(t *testing.T) {
	h, _ := newTestHost(t, Config{})
	if h.HandleEvent(key(tcell.KeyEnter)) {
		t.Fatalf("expected play to stop the host")
	}
	if h.Driver().Active() {
		t.Fatalf("expected driver torn down")
	}
}

func TestHostActionErrorPainted(t *testing.T) {
	handler := func(sel menu.Selection) interface{} {
		return menu.ActionResult{ID: sel.Item.ID, Err: errors.New("boom")}
	}
	h, screen := newTestHost(t, Config{Handler: handler})
	if !h.HandleEvent(key(tcell.KeyEnter)) {
		t.Fatalf("expected errors not to quit")
	}
	_, height := screen.Size()
	if got := cellAt(screen, 0, height-2); got != 'e' {
		t.Fatalf("expected error line, got %q", got)
	}
}

func TestHostMousePressOnAncestor(t *testing.T) {
	h, _ := newTestHost(t, Config{})
	d := h.Driver()
	h.HandleEvent(key(tcell.KeyDown))
	h.HandleEvent(key(tcell.KeyEnter))
	target := d.Frame().Columns[0].Buttons[1]
	x, y := target.Rect.X, target.Rect.Y
	h.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	if got := d.Stack().Top().ID(); got != menu.SettingsID {
		t.Fatalf("expected settings reopened on top, got %s", got)
	}
	if got := d.Stack().Depth(); got != 2 {
		t.Fatalf("expected depth 2, got %d", got)
	}
}

func TestHostHoverSurvivesRedraw(t *testing.T) {
	h, _ := newTestHost(t, Config{})
	d := h.Driver()
	old := d.Frame().Columns[0].Buttons[2]
	h.HandleEvent(tcell.NewEventMouse(old.Rect.X, old.Rect.Y, tcell.ButtonNone, tcell.ModNone))
	if old.Interaction() != ui.InteractionHovered {
		t.Fatalf("expected hovered button")
	}
	h.HandleEvent(key(tcell.KeyDown))
	target := d.Frame().Columns[0].Buttons[2]
	if target == old {
		t.Fatalf("expected rebuilt frame")
	}
	if target.Interaction() != ui.InteractionHovered || target.Visual != target.Style.Hover {
		t.Fatalf("expected button under pointer to stay hovered")
	}
}

func TestHostResizeRedraws(t *testing.T) {
	h, screen := newTestHost(t, Config{ShowFooter: true})
	before := h.Driver().Frame()
	screen.SetSize(60, 20)
	if !h.HandleEvent(tcell.NewEventResize(60, 20)) {
		t.Fatalf("expected host to keep running")
	}
	if h.Driver().Frame() == before {
		t.Fatalf("expected resize to rebuild the frame")
	}
	if got := cellAt(screen, 0, 19); got != '↑' {
		t.Fatalf("expected footer on the last row, got %q", got)
	}
}
