package ui

import (
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/atomicstack/quicknav/internal/theme"
	"github.com/atomicstack/quicknav/internal/ui/state"
)

// Interaction is the pointer state of a button.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// Rect is an axis aligned area in host units (cells or pixels).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout sizes the columns of a frame in host units.
type Layout struct {
	OriginX, OriginY int
	ColumnWidth      int
	RowHeight        int
	HeaderHeight     int
	Gap              int
}

// TerminalLayout places one cell tall rows in fixed width columns.
func TerminalLayout() Layout {
	return Layout{ColumnWidth: 26, RowHeight: 1, HeaderHeight: 2, Gap: 2}
}

// WindowLayout is the pixel layout used by the window host.
func WindowLayout() Layout {
	return Layout{OriginX: 24, OriginY: 24, ColumnWidth: 220, RowHeight: 36, HeaderHeight: 40, Gap: 16}
}

// Button is one materialized item.
type Button struct {
	Target   menu.Selection
	Label    string
	Style    theme.ItemStyle
	Selected bool
	Visual   theme.Visual
	Rect     Rect

	interaction Interaction
}

// Interaction returns the last pointer state applied to the button.
func (b *Button) Interaction() Interaction {
	return b.interaction
}

// Column is one stacked screen as rendered.
type Column struct {
	Screen  menu.ID
	Title   string
	Active  bool
	Rect    Rect
	Buttons []*Button
}

// Frame is the materialized visual tree: every screen on the stack, root
// first, so ancestors stay reachable by pointer.
type Frame struct {
	Columns []Column
}

// BuildFrame materializes the stack using the current selections.
func BuildFrame(stack *state.Stack, sel *state.Selections, styles *theme.Styles, layout Layout) *Frame {
	screens := stack.Screens()
	frame := &Frame{Columns: make([]Column, 0, len(screens))}
	for i, screen := range screens {
		active := i == len(screens)-1
		items := screen.Items()
		current := state.CurrentIndex(screen, sel)
		x := layout.OriginX + i*(layout.ColumnWidth+layout.Gap)
		col := Column{
			Screen: screen.ID(),
			Title:  screen.Title(),
			Active: active,
			Rect: Rect{
				X: x,
				Y: layout.OriginY,
				W: layout.ColumnWidth,
				H: layout.HeaderHeight + len(items)*layout.RowHeight,
			},
			Buttons: make([]*Button, 0, len(items)),
		}
		for row, item := range items {
			selected := row == current
			style := styles.ItemStyle(selected, active)
			col.Buttons = append(col.Buttons, &Button{
				Target:   menu.Selection{Screen: screen.ID(), Row: row, Item: item},
				Label:    item.Label,
				Style:    style,
				Selected: selected,
				Visual:   style.Normal,
				Rect: Rect{
					X: x,
					Y: layout.OriginY + layout.HeaderHeight + row*layout.RowHeight,
					W: layout.ColumnWidth,
					H: layout.RowHeight,
				},
			})
		}
		frame.Columns = append(frame.Columns, col)
	}
	return frame
}

// Buttons returns every button in the frame, column by column.
func (f *Frame) Buttons() []*Button {
	if f == nil {
		return nil
	}
	var out []*Button
	for _, col := range f.Columns {
		out = append(out, col.Buttons...)
	}
	return out
}

// Hit returns the button under the point, if any.
func (f *Frame) Hit(x, y int) *Button {
	if f == nil {
		return nil
	}
	for _, col := range f.Columns {
		if !col.Rect.Contains(x, y) {
			continue
		}
		for _, b := range col.Buttons {
			if b.Rect.Contains(x, y) {
				return b
			}
		}
	}
	return nil
}
