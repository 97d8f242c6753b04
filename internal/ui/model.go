package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/atomicstack/quicknav/internal/theme"
	"github.com/atomicstack/quicknav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	infoTTL        = 3 * time.Second
	titleSeparator = " › "
)

type msgHandler func(tea.Msg) tea.Cmd

// startMsg triggers the first tick once the program is running.
type startMsg struct{}

// Config carries the terminal host settings.
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

// Model implements the Bubble Tea model for the terminal host.
type Model struct {
	driver   *Driver
	renderer *textRenderer
	registry *menu.Registry
	keys     keyMap

	pending []interface{}
	hover   *Button
	query   string
	title   string

	// last pointer position reported by the terminal
	pointerX, pointerY int
	pointerSeen        bool

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel opens the configured menu. An empty root menu falls back to the
// registry root.
func NewModel(cfg Config) (*Model, error) {
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
	m := &Model{
		registry:   registry,
		keys:       defaultKeyMap(),
		showFooter: cfg.ShowFooter,
		verbose:    cfg.Verbose,
	}
	m.renderer = newTextRenderer(theme.Default())
	driver, err := NewDriver(registry, root, m.renderer, Options{
		StickThreshold: cfg.StickThreshold,
		Boundary:       cfg.Boundary,
		Layout:         TerminalLayout(),
		Styles:         theme.Default(),
		Handler:        handler,
		Sink:           m.enqueue,
	})
	if err != nil {
		return nil, err
	}
	m.driver = driver
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(startMsg{}):          m.handleStartMsg,
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleStartMsg(tea.Msg) tea.Cmd {
	m.tick(emptyBatch)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.driver.Redraw()
	m.tick(emptyBatch)
	return nil
}

// enqueue receives action events from the driver while it ticks. They are
// delivered back through Update as ordinary messages.
func (m *Model) enqueue(evt interface{}) {
	m.pending = append(m.pending, evt)
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if title := m.windowTitle(); title != m.title {
		m.title = title
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	for _, evt := range m.pending {
		evt := evt
		cmds = append(cmds, func() tea.Msg { return evt })
	}
	m.pending = m.pending[:0]
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// windowTitle names the top screen by its breadcrumb.
func (m *Model) windowTitle() string {
	top := m.driver.Stack().Top()
	if top == nil {
		return "quicknav"
	}
	return "quicknav: " + strings.Join(menu.Breadcrumb(top.ID()), titleSeparator)
}

// Driver exposes the navigation driver.
func (m *Model) Driver() *Driver {
	return m.driver
}

// Title returns the terminal title last requested by the model.
func (m *Model) Title() string {
	return m.title
}

// Quitting reports whether the model has torn the menu down.
func (m *Model) Quitting() bool {
	return m.quitting
}
