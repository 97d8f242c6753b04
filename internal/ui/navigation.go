package ui

import (
	"unicode"

	"github.com/atomicstack/quicknav/internal/input"
	"github.com/atomicstack/quicknav/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var emptyBatch = input.Batch{}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// keyFor maps a terminal key press onto the normalizer's key set.
func (k keyMap) keyFor(msg tea.KeyMsg) (input.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return input.KeyArrowUp, true
	case key.Matches(msg, k.Down):
		return input.KeyArrowDown, true
	case key.Matches(msg, k.Select):
		return input.KeyEnter, true
	case key.Matches(msg, k.Back):
		return input.KeyBackspace, true
	}
	return input.KeyOther, false
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return m.quit()
	}
	if !m.driver.Active() {
		return nil
	}
	if k, ok := m.keys.keyFor(keyMsg); ok {
		m.query = ""
		m.clearMessages()
		m.tick(input.Batch{Keys: []input.Key{k}})
		return nil
	}
	if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt {
		m.typeToJump(keyMsg.Runes)
	}
	return nil
}

// typeToJump extends the query and moves the top screen's selection to the
// best match. A query that stops matching restarts from the latest runes.
func (m *Model) typeToJump(runes []rune) {
	for _, r := range runes {
		if unicode.IsControl(r) {
			return
		}
	}
	top := m.driver.Stack().Top()
	if top == nil {
		return
	}
	text := string(runes)
	m.query += text
	if state.BestMatchIndex(top.Items(), m.query) < 0 {
		m.query = text
	}
	if m.driver.JumpToLabel(m.query) {
		m.tick(emptyBatch)
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.hover = nil
	m.driver.Teardown()
	return tea.Quit
}
