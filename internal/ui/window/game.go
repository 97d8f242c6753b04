package window

import (
	"errors"
	"image/color"
	"strings"

	"github.com/atomicstack/quicknav/internal/logging"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/atomicstack/quicknav/internal/theme"
	"github.com/atomicstack/quicknav/internal/ui"
	"github.com/atomicstack/quicknav/internal/ui/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 540

	labelPadX = 12
	labelPadY = 11
)

// Config carries the window host settings.
type Config struct {
	Registry       *menu.Registry
	RootMenu       menu.ID
	Handler        menu.Handler
	StickThreshold float32
	Boundary       state.Boundary
	Width          int
	Height         int
	ShowFooter     bool
	Verbose        bool
}

// frameRenderer retains the materialized frame for Draw.
type frameRenderer struct {
	frame *ui.Frame
}

func (r *frameRenderer) Clear() {
	r.frame = nil
}

func (r *frameRenderer) Materialize(f *ui.Frame) {
	r.frame = f
}

// Game hosts the menu driver in an ebiten game loop.
type Game struct {
	driver   *ui.Driver
	renderer *frameRenderer
	source   *EbitenSource
	styles   *theme.Styles
	face     text.Face

	pending []interface{}
	hover   *ui.Button
	info    string
	err     string
	title   string

	width      int
	height     int
	showFooter bool
	verbose    bool
	quit       bool
}

// NewGame opens the configured menu.
func NewGame(cfg Config) (*Game, error) {
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
	g := &Game{
		renderer:   &frameRenderer{},
		source:     NewEbitenSource(),
		styles:     theme.Default(),
		face:       text.NewGoXFace(basicfont.Face7x13),
		width:      cfg.Width,
		height:     cfg.Height,
		showFooter: cfg.ShowFooter,
		verbose:    cfg.Verbose,
	}
	if g.width <= 0 {
		g.width = DefaultWidth
	}
	if g.height <= 0 {
		g.height = DefaultHeight
	}
	driver, err := ui.NewDriver(registry, root, g.renderer, ui.Options{
		StickThreshold: cfg.StickThreshold,
		Boundary:       cfg.Boundary,
		Layout:         ui.WindowLayout(),
		Styles:         g.styles,
		Handler:        handler,
		Sink:           g.enqueue,
	})
	if err != nil {
		return nil, err
	}
	g.driver = driver
	return g, nil
}

// Run opens the window and blocks until the menu is closed.
func Run(cfg Config) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("quicknav")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) enqueue(evt interface{}) {
	g.pending = append(g.pending, evt)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.teardown()
		return ebiten.Termination
	}
	batch := g.source.Poll()
	x, y := ebiten.CursorPosition()
	g.pointer(x, y)
	if g.driver.Tick(batch) {
		g.err = ""
		g.hover = g.driver.Frame().Hit(x, y)
		g.driver.Interact(g.hover, ui.InteractionHovered)
	}
	g.drain()
	if g.quit {
		return ebiten.Termination
	}
	if title := g.windowTitle(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func (g *Game) windowTitle() string {
	top := g.driver.Stack().Top()
	if top == nil {
		return "quicknav"
	}
	return "quicknav: " + strings.Join(menu.Breadcrumb(top.ID()), " › ")
}

func (g *Game) pointer(x, y int) {
	b := g.driver.Frame().Hit(x, y)
	if b != g.hover {
		g.driver.Interact(g.hover, ui.InteractionNone)
		g.hover = b
	}
	if b == nil {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.driver.Interact(b, ui.InteractionPressed)
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.driver.Interact(b, ui.InteractionHovered)
	}
}

func (g *Game) drain() {
	for _, evt := range g.pending {
		result, ok := evt.(menu.ActionResult)
		if !ok {
			continue
		}
		if result.Err != nil {
			logging.Error(result.Err)
			g.err = result.Err.Error()
			continue
		}
		if result.StickThreshold > 0 {
			g.driver.SetStickThreshold(result.StickThreshold)
		}
		if g.verbose {
			g.info = result.Info
		}
		if result.Quit {
			g.teardown()
		}
	}
	g.pending = g.pending[:0]
}

func (g *Game) teardown() {
	g.quit = true
	g.hover = nil
	g.driver.Teardown()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.styles.Background)
	frame := g.renderer.frame
	if frame == nil {
		return
	}
	for _, col := range frame.Columns {
		g.drawColumn(screen, col)
	}
	status := g.info
	if g.err != "" {
		status = "error: " + g.err
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 24, g.height-44)
	}
	if g.showFooter {
		ebitenutil.DebugPrintAt(screen, "arrows/stick move  enter/A select  backspace/B back  esc quit", 24, g.height-24)
	}
}

func (g *Game) drawColumn(screen *ebiten.Image, col ui.Column) {
	r := col.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), g.styles.Panel, false)
	if col.Active {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, g.styles.Border, false)
	}
	title := g.styles.Title
	if !col.Active {
		title = g.styles.Muted
	}
	g.drawText(screen, col.Title, r.X+labelPadX, r.Y+labelPadY+2, title)
	for _, b := range col.Buttons {
		br := b.Rect
		vector.DrawFilledRect(screen, float32(br.X+4), float32(br.Y+2), float32(br.W-8), float32(br.H-4), b.Visual.BG, false)
		if b.Selected && col.Active {
			vector.StrokeRect(screen, float32(br.X+4), float32(br.Y+2), float32(br.W-8), float32(br.H-4), 1, g.styles.Title, false)
		}
		g.drawText(screen, b.Label, br.X+labelPadX, br.Y+labelPadY, b.Visual.FG)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y int, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.driver.Redraw()
	}
	return g.width, g.height
}

// Driver exposes the navigation driver.
func (g *Game) Driver() *ui.Driver {
	return g.driver
}
