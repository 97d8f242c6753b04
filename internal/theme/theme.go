package theme

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Visual is the appearance of one item in one interaction state. Colours are
// shared by the terminal and window hosts.
type Visual struct {
	FG   color.RGBA
	BG   color.RGBA
	Bold bool
}

// Lipgloss converts the visual into a terminal style.
func (v Visual) Lipgloss() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(Hex(v.FG))).
		Background(lipgloss.Color(Hex(v.BG))).
		Bold(v.Bold)
}

// ItemStyle pairs the normal and hovered appearance of an item.
type ItemStyle struct {
	Normal Visual
	Hover  Visual
}

// Styles describes reusable styles shared across the hosts.
type Styles struct {
	Item     ItemStyle
	Selected ItemStyle
	Active   ItemStyle

	Background color.RGBA
	Panel      color.RGBA
	Border     color.RGBA
	Title      color.RGBA
	Muted      color.RGBA

	Header *lipgloss.Style
	Info   *lipgloss.Style
	Error  *lipgloss.Style
	Footer *lipgloss.Style
}

var (
	textNormal  = color.RGBA{200, 220, 255, 255}
	textDim     = color.RGBA{100, 120, 150, 255}
	btnNormal   = color.RGBA{25, 35, 55, 240}
	btnHover    = color.RGBA{35, 55, 90, 255}
	btnSelected = color.RGBA{0, 100, 160, 255}
	btnActive   = color.RGBA{0, 140, 200, 255}
	accent      = color.RGBA{0, 200, 255, 255}
)

var defaultStyles = Styles{
	Item: ItemStyle{
		Normal: Visual{FG: textNormal, BG: btnNormal},
		Hover:  Visual{FG: textNormal, BG: btnHover},
	},
	Selected: ItemStyle{
		Normal: Visual{FG: textNormal, BG: btnSelected},
		Hover:  Visual{FG: textNormal, BG: btnSelected},
	},
	Active: ItemStyle{
		Normal: Visual{FG: color.RGBA{255, 255, 255, 255}, BG: btnActive, Bold: true},
		Hover:  Visual{FG: color.RGBA{255, 255, 255, 255}, BG: btnActive, Bold: true},
	},
	Background: color.RGBA{8, 8, 16, 255},
	Panel:      color.RGBA{15, 15, 30, 230},
	Border:     color.RGBA{0, 140, 200, 255},
	Title:      accent,
	Muted:      textDim,
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(accent))).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(textDim))),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(textDim))),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// ItemStyle picks the style for an item. The selected row of the top screen
// is active; selected rows of ancestor screens use the quieter selection
// colour.
func (s *Styles) ItemStyle(selected, active bool) ItemStyle {
	switch {
	case selected && active:
		return s.Active
	case selected:
		return s.Selected
	default:
		return s.Item
	}
}

// Hex formats a colour for lipgloss.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
