package events

import "github.com/atomicstack/quicknav/internal/logging"

type NavTracer struct{}

type RedrawTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Redraw  = RedrawTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Intent(screen, intent string) {
	logging.Trace("nav.intent", map[string]interface{}{"screen": screen, "intent": intent})
}

func (NavTracer) Move(screen string, row int) {
	logging.Trace("nav.move", map[string]interface{}{"screen": screen, "row": row})
}

func (NavTracer) Push(parent, child string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"parent": parent, "child": child, "depth": depth})
}

func (NavTracer) Pop(screen string, depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"screen": screen, "depth": depth})
}

func (NavTracer) Jump(target string, depth int, found bool) {
	logging.Trace("nav.jump", map[string]interface{}{"target": target, "depth": depth, "found": found})
}

func (NavTracer) Action(screen, item, action string) {
	logging.Trace("nav.action", map[string]interface{}{"screen": screen, "item": item, "action": action})
}

func (NavTracer) Press(screen string, row int) {
	logging.Trace("nav.press", map[string]interface{}{"screen": screen, "row": row})
}

func (RedrawTracer) Frame(depth int, forced bool) {
	logging.Trace("redraw.frame", map[string]interface{}{"depth": depth, "initial": forced})
}

func (RedrawTracer) Teardown() {
	logging.Trace("redraw.teardown", nil)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, eventType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "event": eventType})
}
