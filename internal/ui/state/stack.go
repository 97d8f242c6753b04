package state

import (
	"fmt"

	"github.com/atomicstack/quicknav/internal/input"
	"github.com/atomicstack/quicknav/internal/logging"
	"github.com/atomicstack/quicknav/internal/logging/events"
	"github.com/atomicstack/quicknav/internal/menu"
)

// Outcome describes the effect of applying one intent.
type Outcome struct {
	// Changed is set when anything visible moved: cursor, stack depth, or a
	// resolved action.
	Changed bool
	// Selection is non-nil when a select resolved to an action item.
	Selection *menu.Selection
}

// Stack tracks the active screens, root first. Screens live in an arena and
// the stack holds arena indices, so a screen that is pushed again reuses its
// record.
type Stack struct {
	lookup   menu.Lookup
	arena    []menu.Screen
	index    map[menu.ID]int
	stack    []int
	boundary Boundary

	initialRenderDone bool
}

// NewStack opens the menu on root.
func NewStack(lookup menu.Lookup, root menu.ID) (*Stack, error) {
	if lookup == nil {
		return nil, fmt.Errorf("new stack: nil screen lookup")
	}
	s := &Stack{
		lookup: lookup,
		index:  make(map[menu.ID]int),
	}
	idx, err := s.load(root)
	if err != nil {
		return nil, fmt.Errorf("new stack: %w", err)
	}
	s.stack = []int{idx}
	return s, nil
}

// SetBoundary selects the clamp or wrap policy for up and down.
func (s *Stack) SetBoundary(b Boundary) {
	s.boundary = b
}

func (s *Stack) load(id menu.ID) (int, error) {
	if idx, ok := s.index[id]; ok {
		return idx, nil
	}
	screen, ok := s.lookup.Screen(id)
	if !ok {
		return -1, fmt.Errorf("unknown screen %q", id)
	}
	s.arena = append(s.arena, screen)
	idx := len(s.arena) - 1
	s.index[id] = idx
	return idx, nil
}

// Depth returns the number of screens on the stack.
func (s *Stack) Depth() int {
	return len(s.stack)
}

// Top returns the screen the user is interacting with.
func (s *Stack) Top() menu.Screen {
	if len(s.stack) == 0 {
		return nil
	}
	return s.arena[s.stack[len(s.stack)-1]]
}

// Screens returns the active screens, root first.
func (s *Stack) Screens() []menu.Screen {
	out := make([]menu.Screen, len(s.stack))
	for i, idx := range s.stack {
		out[i] = s.arena[idx]
	}
	return out
}

// CurrentIndex reads the stored row for screen, clamped to its items.
func CurrentIndex(screen menu.Screen, sel *Selections) int {
	if screen == nil {
		return 0
	}
	return ClampRow(sel.Get(screen.ID()), len(screen.Items()))
}

// Apply runs intent against the top screen.
func (s *Stack) Apply(intent input.Intent, sel *Selections) Outcome {
	top := s.Top()
	if top == nil {
		return Outcome{}
	}
	events.Nav.Intent(string(top.ID()), intent.String())
	switch intent {
	case input.IntentUp:
		return s.move(top, -1, sel)
	case input.IntentDown:
		return s.move(top, 1, sel)
	case input.IntentSelect:
		return s.selectCurrent(top, sel)
	case input.IntentBack:
		return Outcome{Changed: s.pop()}
	}
	return Outcome{}
}

func (s *Stack) move(top menu.Screen, delta int, sel *Selections) Outcome {
	n := len(top.Items())
	if n == 0 {
		return Outcome{}
	}
	stored := sel.Get(top.ID())
	current := ClampRow(stored, n)
	next := MoveRow(current, delta, n, s.boundary)
	sel.Set(top.ID(), next)
	if next == current {
		// a stale out of range entry still got repaired above
		return Outcome{Changed: stored != next}
	}
	events.Nav.Move(string(top.ID()), next)
	return Outcome{Changed: true}
}

func (s *Stack) selectCurrent(top menu.Screen, sel *Selections) Outcome {
	items := top.Items()
	if len(items) == 0 {
		return Outcome{}
	}
	row := CurrentIndex(top, sel)
	res, ok := top.Resolve(row)
	if !ok {
		return Outcome{}
	}
	if res.Action != nil {
		item := items[row]
		events.Nav.Action(string(top.ID()), item.ID, res.Action.ID)
		return Outcome{Changed: true, Selection: &menu.Selection{Screen: top.ID(), Row: row, Item: item}}
	}
	if res.Child == "" {
		return Outcome{}
	}
	idx, err := s.load(res.Child)
	if err != nil {
		logging.Error(fmt.Errorf("select %s row %d: %w", top.ID(), row, err))
		return Outcome{}
	}
	s.stack = append(s.stack, idx)
	events.Nav.Push(string(top.ID()), string(res.Child), len(s.stack))
	return Outcome{Changed: true}
}

func (s *Stack) pop() bool {
	if len(s.stack) <= 1 {
		return false
	}
	top := s.Top()
	s.stack = s.stack[:len(s.stack)-1]
	events.Nav.Pop(string(top.ID()), len(s.stack))
	return true
}

// PopToSelection truncates the stack so the deepest screen with id becomes
// the top. Deeper screens are discarded. Unknown identifiers leave the stack
// untouched and report false.
func (s *Stack) PopToSelection(id menu.ID) bool {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.arena[s.stack[i]].ID() == id {
			s.stack = s.stack[:i+1]
			events.Nav.Jump(string(id), len(s.stack), true)
			return true
		}
	}
	events.Nav.Jump(string(id), len(s.stack), false)
	return false
}

// MarkRendered records the first render and reports whether this call was
// the one that did so.
func (s *Stack) MarkRendered() bool {
	if s.initialRenderDone {
		return false
	}
	s.initialRenderDone = true
	return true
}

// Clear empties the stack. A cleared stack ignores every intent.
func (s *Stack) Clear() {
	s.stack = nil
	s.arena = nil
	s.index = make(map[menu.ID]int)
	s.initialRenderDone = false
}
