package state

import "testing"

func TestMoveRow(t *testing.T) {
	if got := MoveRow(0, -1, 3, BoundaryClamp); got != 0 {
		t.Fatalf("expected clamp at 0, got %d", got)
	}
	if got := MoveRow(2, 1, 3, BoundaryClamp); got != 2 {
		t.Fatalf("expected clamp at 2, got %d", got)
	}
	if got := MoveRow(0, -1, 3, BoundaryWrap); got != 2 {
		t.Fatalf("expected wrap to 2, got %d", got)
	}
	if got := MoveRow(2, 1, 3, BoundaryWrap); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := MoveRow(5, 1, 0, BoundaryWrap); got != 0 {
		t.Fatalf("expected 0 for empty screen, got %d", got)
	}
}

func TestParseBoundary(t *testing.T) {
	if b, err := ParseBoundary("wrap"); err != nil || b != BoundaryWrap {
		t.Fatalf("expected wrap, got %v (%v)", b, err)
	}
	if b, err := ParseBoundary(""); err != nil || b != BoundaryClamp {
		t.Fatalf("expected clamp default, got %v (%v)", b, err)
	}
	if _, err := ParseBoundary("bounce"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
