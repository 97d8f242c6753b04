package ui

import "github.com/atomicstack/quicknav/internal/ui/state"

// Renderer owns the materialized visuals of a host.
type Renderer interface {
	// Clear destroys everything currently materialized.
	Clear()
	// Materialize builds visuals for frame.
	Materialize(frame *Frame)
}

// Coordinator decides once per tick whether the frame must be rebuilt.
type Coordinator struct {
	pending bool
}

// Request queues an external redraw signal for the next decision.
func (c *Coordinator) Request() {
	c.pending = true
}

// Decide consumes the queued signal. The first decision for a stack always
// redraws; initial reports that case.
func (c *Coordinator) Decide(stack *state.Stack) (redraw, initial bool) {
	redraw = c.pending
	c.pending = false
	if stack != nil && stack.MarkRendered() {
		return true, true
	}
	return redraw, false
}
