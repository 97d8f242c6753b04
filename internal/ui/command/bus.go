package command

import (
	"fmt"

	"github.com/atomicstack/quicknav/internal/logging/events"
	"github.com/atomicstack/quicknav/internal/menu"
)

// Request encapsulates an action invocation.
type Request struct {
	Selection menu.Selection
	Handler   menu.Handler
}

func (r Request) id() string {
	if r.Selection.Item.Action != nil {
		return r.Selection.Item.Action.ID
	}
	return r.Selection.Item.ID
}

// Bus hands resolved selections to the owner's handler and forwards the
// resulting event to a sink.
type Bus struct {
	sink func(interface{})
}

// New initialises a bus. A nil sink discards events.
func New(sink func(interface{})) *Bus {
	return &Bus{sink: sink}
}

// Execute runs the handler synchronously and returns the produced event,
// which is also delivered to the sink.
func (b *Bus) Execute(req Request) interface{} {
	id, label := req.id(), req.Selection.Item.Label
	events.Command.Queue(id, label)
	if req.Handler == nil {
		events.Command.Skip(id, label)
		return nil
	}
	evt := req.Handler(req.Selection)
	if evt == nil {
		events.Command.NoOp(id, label)
		return nil
	}
	events.Command.Result(id, label, fmt.Sprintf("%T", evt))
	if b.sink != nil {
		b.sink(evt)
	}
	return evt
}
