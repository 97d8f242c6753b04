package ui

import (
	"github.com/atomicstack/quicknav/internal/input"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || !m.driver.Active() {
		return nil
	}
	switch mouse.Action {
	case tea.MouseActionMotion:
		m.pointerMoved(mouse.X, mouse.Y)
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft {
			return nil
		}
		m.pointerPressed(mouse.X, mouse.Y)
	case tea.MouseActionRelease:
		if m.hover != nil {
			m.driver.Interact(m.hover, InteractionHovered)
		}
	}
	return nil
}

// tick runs the driver. A rebuilt frame holds new buttons, so hover is
// re-targeted at whatever now sits under the pointer.
func (m *Model) tick(batch input.Batch) bool {
	if !m.driver.Tick(batch) {
		return false
	}
	m.hover = nil
	if m.pointerSeen {
		m.hover = m.driver.Frame().Hit(m.pointerX, m.pointerY)
		m.driver.Interact(m.hover, InteractionHovered)
	}
	return true
}

func (m *Model) trackPointer(x, y int) {
	m.pointerX, m.pointerY = x, y
	m.pointerSeen = true
}

func (m *Model) pointerMoved(x, y int) {
	m.trackPointer(x, y)
	b := m.driver.Frame().Hit(x, y)
	if b != m.hover {
		m.driver.Interact(m.hover, InteractionNone)
		m.hover = b
	}
	if b != nil && b.Interaction() != InteractionPressed {
		m.driver.Interact(b, InteractionHovered)
	}
}

func (m *Model) pointerPressed(x, y int) {
	m.trackPointer(x, y)
	b := m.driver.Frame().Hit(x, y)
	if b == nil {
		return
	}
	if b != m.hover {
		m.driver.Interact(m.hover, InteractionNone)
	}
	m.hover = b
	m.query = ""
	m.clearMessages()
	m.driver.Interact(b, InteractionPressed)
	m.tick(emptyBatch)
}
