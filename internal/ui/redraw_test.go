package ui

import (
	"testing"

	"github.com/atomicstack/quicknav/internal/ui/state"
)

func TestCoordinatorInitialDecisionOnce(t *testing.T) {
	stack, err := state.NewStack(newTestRegistry(), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var c Coordinator
	if redraw, initial := c.Decide(stack); !redraw || !initial {
		t.Fatalf("expected initial redraw, got redraw=%v initial=%v", redraw, initial)
	}
	if redraw, _ := c.Decide(stack); redraw {
		t.Fatalf("expected no redraw without a signal")
	}
	c.Request()
	c.Request()
	if redraw, initial := c.Decide(stack); !redraw || initial {
		t.Fatalf("expected signalled redraw, got redraw=%v initial=%v", redraw, initial)
	}
	if redraw, _ := c.Decide(stack); redraw {
		t.Fatalf("expected repeated signals to collapse into one redraw")
	}
}

func TestCoordinatorFreshStackRendersAgain(t *testing.T) {
	stack, err := state.NewStack(newTestRegistry(), "root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var c Coordinator
	c.Decide(stack)
	stack.Clear()
	if redraw, initial := c.Decide(stack); !redraw || !initial {
		t.Fatalf("expected cleared stack to render as new")
	}
}
