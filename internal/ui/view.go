package ui

import (
	"strings"

	"github.com/atomicstack/quicknav/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	selectedMarker = "▸ "
	plainMarker    = "  "
	labelTail      = "…"
)

// textRenderer retains the materialized frame for View.
type textRenderer struct {
	styles *theme.Styles
	frame  *Frame
}

func newTextRenderer(styles *theme.Styles) *textRenderer {
	return &textRenderer{styles: styles}
}

func (r *textRenderer) Clear() {
	r.frame = nil
}

func (r *textRenderer) Materialize(frame *Frame) {
	r.frame = frame
}

// render draws the frame as side by side columns. Column and row offsets
// match the rectangles computed by BuildFrame so pointer hits line up.
func (r *textRenderer) render() string {
	if r.frame == nil || len(r.frame.Columns) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(r.frame.Columns)*2)
	for i, col := range r.frame.Columns {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", columnGap(r.frame, i)))
		}
		blocks = append(blocks, r.renderColumn(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func columnGap(f *Frame, i int) int {
	prev := f.Columns[i-1].Rect
	gap := f.Columns[i].Rect.X - (prev.X + prev.W)
	if gap < 0 {
		return 0
	}
	return gap
}

func (r *textRenderer) renderColumn(col Column) string {
	width := col.Rect.W
	lines := make([]string, 0, len(col.Buttons)+2)
	title := truncate.StringWithTail(col.Title, uint(width), labelTail)
	headerStyle := r.styles.Header.Copy().Width(width)
	if !col.Active {
		headerStyle = headerStyle.Faint(true)
	}
	lines = append(lines, headerStyle.Render(title))
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Hex(r.styles.Border)))
	lines = append(lines, border.Render(strings.Repeat("─", width)))
	for _, b := range col.Buttons {
		marker := plainMarker
		if b.Selected {
			marker = selectedMarker
		}
		label := truncate.StringWithTail(b.Label, uint(width-len([]rune(marker))), labelTail)
		lines = append(lines, b.Visual.Lipgloss().Width(width).Render(marker+label))
	}
	return strings.Join(lines, "\n")
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	styles := theme.Default()
	lines := []string{m.renderer.render()}
	switch {
	case m.errMsg != "":
		lines = append(lines, "", styles.Error.Render(m.errMsg))
	case m.infoMsg != "":
		lines = append(lines, "", styles.Info.Render(m.infoMsg))
	}
	if m.showFooter {
		lines = append(lines, "", styles.Footer.Render(m.footer()))
	}
	out := strings.Join(lines, "\n")
	if m.width <= 0 {
		return out
	}
	rows := strings.Split(out, "\n")
	for i, row := range rows {
		if ansi.StringWidth(row) > m.width {
			rows[i] = ansi.Truncate(row, m.width, "")
		}
	}
	return strings.Join(rows, "\n")
}

func (m *Model) footer() string {
	parts := make([]string, 0, 6)
	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	parts = append(parts, "type to jump")
	return strings.Join(parts, " • ")
}
