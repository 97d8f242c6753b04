package menu

import (
	"fmt"
	"sort"
	"strings"
)

// Node is the Screen implementation used by Registry.
type Node struct {
	id    ID
	title string
	items []Item
}

// NewNode creates a screen. An empty title is derived from the identifier.
func NewNode(id ID, title string, items ...Item) *Node {
	if strings.TrimSpace(title) == "" {
		title = prettyLabel(string(id))
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return &Node{id: id, title: title, items: dup}
}

func (n *Node) ID() ID { return n.id }

func (n *Node) Title() string { return n.title }

func (n *Node) Items() []Item { return n.items }

// Resolve returns the action or child for the row at index.
func (n *Node) Resolve(index int) (Resolution, bool) {
	if index < 0 || index >= len(n.items) {
		return Resolution{}, false
	}
	item := n.items[index]
	if item.Action != nil {
		return Resolution{Action: item.Action}, true
	}
	if item.Child != "" {
		return Resolution{Child: item.Child}, true
	}
	return Resolution{}, false
}

// Registry stores the screens of one menu tree keyed by identifier.
type Registry struct {
	root  ID
	nodes map[ID]*Node
}

// NewRegistry creates a registry whose first screen is root.
func NewRegistry(root *Node, rest ...*Node) *Registry {
	r := &Registry{root: root.ID(), nodes: make(map[ID]*Node, len(rest)+1)}
	r.Add(root)
	for _, n := range rest {
		r.Add(n)
	}
	return r
}

// Add registers or replaces a screen.
func (r *Registry) Add(n *Node) {
	if n == nil {
		return
	}
	r.nodes[n.ID()] = n
}

// Root returns the identifier of the root screen.
func (r *Registry) Root() ID {
	return r.root
}

// Screen implements Lookup.
func (r *Registry) Screen(id ID) (Screen, bool) {
	node, ok := r.nodes[id]
	if !ok {
		return nil, false
	}
	return node, true
}

// Find returns the concrete node for id.
func (r *Registry) Find(id ID) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// Validate checks that every submenu item points at a registered screen.
func (r *Registry) Validate() error {
	ids := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		for _, item := range r.nodes[ID(id)].items {
			if !item.IsSubmenu() {
				continue
			}
			if _, ok := r.nodes[item.Child]; !ok {
				return fmt.Errorf("screen %s: item %s opens unknown screen %s", id, item.ID, item.Child)
			}
		}
	}
	return nil
}

// Breadcrumb returns the labels of id and its ancestors, root first, based on
// the "parent:child" identifier convention.
func Breadcrumb(id ID) []string {
	var parts []string
	current := string(id)
	for current != "" {
		parent, key := parentKey(current)
		parts = append([]string{prettyLabel(key)}, parts...)
		current = parent
	}
	return parts
}

func parentKey(id string) (string, string) {
	idx := strings.LastIndex(id, ":")
	if idx < 0 {
		return "", id
	}
	return id[:idx], id[idx+1:]
}
