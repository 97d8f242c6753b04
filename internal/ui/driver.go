package ui

import (
	"fmt"

	"github.com/atomicstack/quicknav/internal/input"
	"github.com/atomicstack/quicknav/internal/logging/events"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/atomicstack/quicknav/internal/theme"
	"github.com/atomicstack/quicknav/internal/ui/command"
	"github.com/atomicstack/quicknav/internal/ui/state"
)

// Options configures a Driver.
type Options struct {
	StickThreshold float32
	Boundary       state.Boundary
	Layout         Layout
	Styles         *theme.Styles
	Handler        menu.Handler
	Sink           func(interface{})
}

// Driver runs the per tick pipeline: normalize input, apply intents to the
// stack, dispatch actions and rebuild the frame when needed. It is not safe
// for concurrent use; hosts call it from their update loop.
type Driver struct {
	normalizer *input.Normalizer
	stack      *state.Stack
	selections *state.Selections
	bus        *command.Bus
	handler    menu.Handler
	redraw     Coordinator
	renderer   Renderer
	styles     *theme.Styles
	layout     Layout
	frame      *Frame
	active     bool
}

// NewDriver opens the menu at root.
func NewDriver(lookup menu.Lookup, root menu.ID, renderer Renderer, opts Options) (*Driver, error) {
	stack, err := state.NewStack(lookup, root)
	if err != nil {
		return nil, fmt.Errorf("open menu: %w", err)
	}
	stack.SetBoundary(opts.Boundary)
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	layout := opts.Layout
	if layout.ColumnWidth <= 0 {
		layout = TerminalLayout()
	}
	return &Driver{
		normalizer: input.NewNormalizer(opts.StickThreshold),
		stack:      stack,
		selections: state.NewSelections(),
		bus:        command.New(opts.Sink),
		handler:    opts.Handler,
		renderer:   renderer,
		styles:     styles,
		layout:     layout,
		active:     true,
	}, nil
}

// Tick processes one batch of input and reports whether the frame was
// rebuilt.
func (d *Driver) Tick(batch input.Batch) bool {
	if !d.active {
		return false
	}
	if !batch.Empty() {
		for _, intent := range d.normalizer.Normalize(batch) {
			d.apply(intent)
			if !d.active {
				// an action handler tore the menu down
				return false
			}
		}
	}
	redraw, initial := d.redraw.Decide(d.stack)
	if !redraw {
		return false
	}
	d.rebuild(initial)
	return true
}

func (d *Driver) apply(intent input.Intent) {
	out := d.stack.Apply(intent, d.selections)
	if out.Selection != nil {
		d.bus.Execute(command.Request{Selection: *out.Selection, Handler: d.handler})
	}
	if out.Changed {
		d.redraw.Request()
	}
}

func (d *Driver) rebuild(initial bool) {
	if d.renderer != nil {
		d.renderer.Clear()
	}
	d.frame = BuildFrame(d.stack, d.selections, d.styles, d.layout)
	if d.renderer != nil {
		d.renderer.Materialize(d.frame)
	}
	events.Redraw.Frame(d.stack.Depth(), initial)
}

// Interact applies a pointer state change to a materialized button. Repeated
// reports of the same state are ignored.
func (d *Driver) Interact(b *Button, i Interaction) {
	if b == nil || !d.active || b.interaction == i {
		return
	}
	b.interaction = i
	switch i {
	case InteractionHovered:
		if !b.Selected {
			b.Visual = b.Style.Hover
		}
	case InteractionNone:
		if !b.Selected {
			b.Visual = b.Style.Normal
		}
	case InteractionPressed:
		d.press(b.Target)
	}
}

// press jumps to the target's screen, preselects its row and selects it.
func (d *Driver) press(target menu.Selection) {
	events.Nav.Press(string(target.Screen), target.Row)
	if !d.stack.PopToSelection(target.Screen) {
		return
	}
	d.selections.Set(target.Screen, target.Row)
	d.apply(input.IntentSelect)
	// the jump alone may have discarded screens
	d.redraw.Request()
}

// JumpToLabel moves the top screen's selection to the best label match.
func (d *Driver) JumpToLabel(query string) bool {
	if !d.active {
		return false
	}
	if d.stack.JumpToLabel(query, d.selections) {
		d.redraw.Request()
		return true
	}
	return false
}

// Redraw queues an external redraw signal.
func (d *Driver) Redraw() {
	d.redraw.Request()
}

// SetStickThreshold changes the analog threshold at runtime.
func (d *Driver) SetStickThreshold(threshold float32) {
	d.normalizer.SetThreshold(threshold)
}

// Teardown destroys the visuals and discards navigation state. Later ticks
// do nothing.
func (d *Driver) Teardown() {
	if !d.active {
		return
	}
	d.active = false
	if d.renderer != nil {
		d.renderer.Clear()
	}
	d.frame = nil
	d.stack.Clear()
	d.selections.Reset()
	events.Redraw.Teardown()
}

// Active reports whether the menu is still shown.
func (d *Driver) Active() bool {
	return d.active
}

// Frame returns the last materialized frame, or nil before the first render
// and after teardown.
func (d *Driver) Frame() *Frame {
	return d.frame
}

func (d *Driver) Stack() *state.Stack {
	return d.stack
}

func (d *Driver) Selections() *state.Selections {
	return d.selections
}

func (d *Driver) Normalizer() *input.Normalizer {
	return d.normalizer
}
