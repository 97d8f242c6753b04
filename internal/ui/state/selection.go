package state

import "github.com/atomicstack/quicknav/internal/menu"

// Selections remembers the highlighted row of every screen that has been
// visited. Entries outlive the screen being on the stack.
type Selections struct {
	rows map[menu.ID]int
}

// NewSelections returns an empty store.
func NewSelections() *Selections {
	return &Selections{rows: make(map[menu.ID]int)}
}

// Get returns the stored row for id, or 0 for screens never seen.
func (s *Selections) Get(id menu.ID) int {
	if s == nil || s.rows == nil {
		return 0
	}
	return s.rows[id]
}

// Lookup returns the stored row and whether one exists.
func (s *Selections) Lookup(id menu.ID) (int, bool) {
	if s == nil || s.rows == nil {
		return 0, false
	}
	row, ok := s.rows[id]
	return row, ok
}

// Set overwrites the row for id. Bounds are not checked here; readers clamp.
func (s *Selections) Set(id menu.ID, row int) {
	if s.rows == nil {
		s.rows = make(map[menu.ID]int)
	}
	s.rows[id] = row
}

// Len returns the number of stored entries.
func (s *Selections) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Reset drops every entry.
func (s *Selections) Reset() {
	for id := range s.rows {
		delete(s.rows, id)
	}
}
