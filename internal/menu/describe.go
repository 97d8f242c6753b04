package menu

import (
	"sort"
	"strconv"
	"strings"
)

// IDs returns the registered screen identifiers, root first and the rest in
// lexical order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.nodes))
	for id := range r.nodes {
		if id != r.root {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if _, ok := r.nodes[r.root]; ok {
		ids = append([]ID{r.root}, ids...)
	}
	return ids
}

// Describe lists every screen as table rows: identifier, item count, title
// and the item labels, submenus marked with a trailing arrow.
func (r *Registry) Describe() [][]string {
	rows := [][]string{{"SCREEN", "ITEMS", "TITLE", "ENTRIES"}}
	for _, id := range r.IDs() {
		node := r.nodes[id]
		labels := make([]string, 0, len(node.items))
		for _, item := range node.items {
			label := item.Label
			if item.IsSubmenu() {
				label += " →"
			}
			labels = append(labels, label)
		}
		rows = append(rows, []string{
			string(id),
			strconv.Itoa(len(node.items)),
			node.title,
			strings.Join(labels, ", "),
		})
	}
	return rows
}
