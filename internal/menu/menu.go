package menu

import (
	"strings"
	"unicode"
)

// ID identifies one screen of the menu hierarchy.
type ID string

// Action is the payload carried by a leaf item. Navigation never inspects it.
type Action struct {
	ID      string
	Payload interface{}
}

// Item represents a selectable row. Items either carry an Action or point at
// a Child screen; an item with neither does nothing when selected.
type Item struct {
	ID     string
	Label  string
	Action *Action
	Child  ID
}

// IsSubmenu reports whether selecting the item opens another screen.
func (i Item) IsSubmenu() bool {
	return i.Action == nil && i.Child != ""
}

// Resolution is what a screen yields for a selected row.
type Resolution struct {
	Action *Action
	Child  ID
}

// Screen is one level of the hierarchy. Navigation is written against this
// interface so applications can supply their own trees.
type Screen interface {
	ID() ID
	Title() string
	Items() []Item
	Resolve(index int) (Resolution, bool)
}

// Lookup resolves screen identifiers, typically backed by a Registry.
type Lookup interface {
	Screen(id ID) (Screen, bool)
}

// Selection pins an item on a screen. It is handed to a Handler when a
// select resolves to an action.
type Selection struct {
	Screen ID
	Row    int
	Item   Item
}

// Handler turns a resolved selection into an application event.
type Handler func(Selection) interface{}

// ActionResult is the event produced by DefaultHandler.
type ActionResult struct {
	ID             string
	Info           string
	Quit           bool
	StickThreshold float32
	Err            error
}

// ActionItem builds a leaf item whose action shares the item ID.
func ActionItem(id, label string, payload interface{}) Item {
	return Item{ID: id, Label: label, Action: &Action{ID: id, Payload: payload}}
}

// SubmenuItem builds an item that opens child.
func SubmenuItem(child ID, label string) Item {
	return Item{ID: string(child), Label: label, Child: child}
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		id = id[idx+1:]
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
