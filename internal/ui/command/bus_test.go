package command

import (
	"testing"

	"github.com/atomicstack/quicknav/internal/menu"
)

func TestExecuteForwardsEventToSink(t *testing.T) {
	var got []interface{}
	bus := New(func(evt interface{}) { got = append(got, evt) })
	sel := menu.Selection{Screen: "root", Item: menu.ActionItem("quit", "Quit", nil)}
	evt := bus.Execute(Request{Selection: sel, Handler: func(s menu.Selection) interface{} {
		return "quit:" + s.Item.Action.ID
	}})
	if evt != "quit:quit" {
		t.Fatalf("expected handler event, got %v", evt)
	}
	if len(got) != 1 || got[0] != "quit:quit" {
		t.Fatalf("expected sink to receive event, got %v", got)
	}
}

func TestExecuteSkipsNilHandlerAndNilEvent(t *testing.T) {
	calls := 0
	bus := New(func(interface{}) { calls++ })
	sel := menu.Selection{Item: menu.ActionItem("noop", "Noop", nil)}
	if evt := bus.Execute(Request{Selection: sel}); evt != nil {
		t.Fatalf("expected nil event without handler, got %v", evt)
	}
	if evt := bus.Execute(Request{Selection: sel, Handler: func(menu.Selection) interface{} { return nil }}); evt != nil {
		t.Fatalf("expected nil event, got %v", evt)
	}
	if calls != 0 {
		t.Fatalf("expected sink untouched, got %d calls", calls)
	}
}
