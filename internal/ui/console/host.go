// Package console hosts the menu driver directly on a tcell screen. It is
// the lightweight alternative to the Bubble Tea host: one event loop, no
// message runtime, cells written straight to the terminal.
package console

import (
	"image/color"
	"unicode"

	"github.com/atomicstack/quicknav/internal/input"
	"github.com/atomicstack/quicknav/internal/logging"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/atomicstack/quicknav/internal/theme"
	"github.com/atomicstack/quicknav/internal/ui"
	"github.com/atomicstack/quicknav/internal/ui/state"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const footerText = "↑/↓ move  enter select  backspace back  q quit  type to jump"

// Config carries the console host settings.
type Config struct {
	Registry       *menu.Registry
	RootMenu       menu.ID
	Handler        menu.Handler
	StickThreshold float32
	Boundary       state.Boundary
	ShowFooter     bool
	Verbose        bool
}

type frameRenderer struct {
	frame *ui.Frame
}

func (r *frameRenderer) Clear() {
	r.frame = nil
}

func (r *frameRenderer) Materialize(f *ui.Frame) {
	r.frame = f
}

// Host owns the screen and feeds terminal events to the driver.
type Host struct {
	screen   tcell.Screen
	driver   *ui.Driver
	renderer *frameRenderer
	styles   *theme.Styles

	pending []interface{}
	hover   *ui.Button
	buttons tcell.ButtonMask
	mouseX  int
	mouseY  int
	query   string
	info    string
	err     string

	showFooter bool
	verbose    bool
	quit       bool
}

// New opens the configured menu on an initialised screen.
func New(screen tcell.Screen, cfg Config) (*Host, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = menu.BuildRegistry()
	}
	root := cfg.RootMenu
	if root == "" {
		root = registry.Root()
	}
	handler := cfg.Handler
	if handler == nil {
		handler = menu.DefaultHandler
	}
	h := &Host{
		screen:     screen,
		renderer:   &frameRenderer{},
		styles:     theme.Default(),
		mouseX:     -1,
		mouseY:     -1,
		showFooter: cfg.ShowFooter,
		verbose:    cfg.Verbose,
	}
	driver, err := ui.NewDriver(registry, root, h.renderer, ui.Options{
		StickThreshold: cfg.StickThreshold,
		Boundary:       cfg.Boundary,
		Layout:         ui.TerminalLayout(),
		Styles:         h.styles,
		Handler:        handler,
		Sink:           h.enqueue,
	})
	if err != nil {
		return nil, err
	}
	h.driver = driver
	return h, nil
}

// Run takes over the terminal and blocks until the menu is closed.
func Run(cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	h, err := New(screen, cfg)
	if err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalised
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	h.Start()
	for ev := range eventChan {
		if !h.HandleEvent(ev) {
			return nil
		}
	}
	return nil
}

func (h *Host) enqueue(evt interface{}) {
	h.pending = append(h.pending, evt)
}

// Start runs the first tick and paints it.
func (h *Host) Start() {
	h.tick(input.Batch{})
	h.draw()
}

// HandleEvent processes one terminal event and reports whether the host
// keeps running.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	if h.quit {
		return false
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
		h.driver.Redraw()
		h.tick(input.Batch{})
	}
	h.drain()
	if h.quit {
		return false
	}
	h.draw()
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.teardown()
		return
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			h.teardown()
			return
		}
		if ev.Modifiers()&tcell.ModAlt == 0 {
			h.typeToJump(ev.Rune())
		}
		return
	}
	k := input.KeyFromTcell(ev)
	if k == input.KeyOther {
		return
	}
	h.query = ""
	h.info, h.err = "", ""
	h.tick(input.Batch{Keys: []input.Key{k}})
}

func (h *Host) typeToJump(r rune) {
	if unicode.IsControl(r) {
		return
	}
	top := h.driver.Stack().Top()
	if top == nil {
		return
	}
	h.query += string(r)
	if state.BestMatchIndex(top.Items(), h.query) < 0 {
		h.query = string(r)
	}
	if h.driver.JumpToLabel(h.query) {
		h.tick(input.Batch{})
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	h.mouseX, h.mouseY = x, y
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := h.buttons&tcell.Button1 != 0
	h.buttons = ev.Buttons()

	b := h.driver.Frame().Hit(x, y)
	if b != h.hover {
		h.driver.Interact(h.hover, ui.InteractionNone)
		h.hover = b
	}
	if b == nil {
		return
	}
	if pressed && !wasPressed {
		h.query = ""
		h.info, h.err = "", ""
		h.driver.Interact(b, ui.InteractionPressed)
		h.tick(input.Batch{})
		return
	}
	if !pressed {
		h.driver.Interact(b, ui.InteractionHovered)
	}
}

// tick runs the driver and re-targets hover after a rebuild.
func (h *Host) tick(batch input.Batch) {
	if !h.driver.Tick(batch) {
		return
	}
	h.hover = h.driver.Frame().Hit(h.mouseX, h.mouseY)
	h.driver.Interact(h.hover, ui.InteractionHovered)
}

func (h *Host) drain() {
	for _, evt := range h.pending {
		result, ok := evt.(menu.ActionResult)
		if !ok {
			continue
		}
		if result.Err != nil {
			logging.Error(result.Err)
			h.err = result.Err.Error()
			h.info = ""
			continue
		}
		if result.StickThreshold > 0 {
			h.driver.SetStickThreshold(result.StickThreshold)
		}
		if h.verbose {
			h.info = result.Info
		}
		if result.Quit {
			h.teardown()
		}
	}
	h.pending = h.pending[:0]
}

func (h *Host) teardown() {
	h.quit = true
	h.hover = nil
	h.driver.Teardown()
}

func (h *Host) draw() {
	base := tcell.StyleDefault.Background(rgb(h.styles.Background))
	h.screen.SetStyle(base)
	h.screen.Fill(' ', base)
	width, height := h.screen.Size()
	if frame := h.renderer.frame; frame != nil {
		for _, col := range frame.Columns {
			h.drawColumn(col, width)
		}
	}
	if h.err != "" {
		style := base.Foreground(tcell.ColorRed).Bold(true)
		h.puts(0, height-2, width, "error: "+h.err, style)
	} else if h.info != "" {
		h.puts(0, height-2, width, h.info, base.Foreground(rgb(h.styles.Muted)))
	}
	if h.showFooter {
		h.puts(0, height-1, width, footerText, base.Foreground(rgb(h.styles.Muted)))
	}
	h.screen.Show()
}

func (h *Host) drawColumn(col ui.Column, width int) {
	r := col.Rect
	limit := min(r.X+r.W, width)
	title := tcell.StyleDefault.Foreground(rgb(h.styles.Title)).Bold(true)
	if !col.Active {
		title = tcell.StyleDefault.Foreground(rgb(h.styles.Muted))
	}
	h.puts(r.X, r.Y, limit, col.Title, title)
	for x := r.X; x < limit; x++ {
		h.screen.SetContent(x, r.Y+1, '─', nil, tcell.StyleDefault.Foreground(rgb(h.styles.Border)))
	}
	for _, b := range col.Buttons {
		style := visualStyle(b.Visual)
		marker := "  "
		if b.Selected {
			marker = "▸ "
		}
		x := h.puts(b.Rect.X, b.Rect.Y, limit, marker+b.Label, style)
		for ; x < limit; x++ {
			h.screen.SetContent(x, b.Rect.Y, ' ', nil, style)
		}
	}
}

// puts writes s from x up to limit and returns the column after the last
// cell written.
func (h *Host) puts(x, y, limit int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		h.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func visualStyle(v theme.Visual) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(v.FG)).Background(rgb(v.BG)).Bold(v.Bold)
}

// Driver exposes the navigation driver.
func (h *Host) Driver() *ui.Driver {
	return h.driver
}

// Quit reports whether the host has shut down.
func (h *Host) Quit() bool {
	return h.quit
}
