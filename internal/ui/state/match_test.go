package state

import (
	"testing"

	"github.com/atomicstack/quicknav/internal/menu"
)

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "play", Label: "Play"},
		{ID: "settings", Label: "Settings"},
		{ID: "quit", Label: "Quit"},
	}
	if idx := BestMatchIndex(items, "quit"); idx != 2 {
		t.Fatalf("expected exact match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "se"); idx != 1 {
		t.Fatalf("expected prefix match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "stg"); idx != 1 {
		t.Fatalf("expected fuzzy match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != -1 {
		t.Fatalf("expected -1 for no match, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "play"); idx != -1 {
		t.Fatalf("expected -1 for empty items, got %d", idx)
	}
}

func TestJumpToLabel(t *testing.T) {
	s, sel := newTestStack(t)
	if !s.JumpToLabel("about", sel) {
		t.Fatalf("expected jump to move selection")
	}
	if sel.Get("root") != 2 {
		t.Fatalf("expected row 2, got %d", sel.Get("root"))
	}
	if s.JumpToLabel("About", sel) {
		t.Fatalf("expected no change when already selected")
	}
	if s.JumpToLabel("xyz", sel) {
		t.Fatalf("expected no change without match")
	}
}
