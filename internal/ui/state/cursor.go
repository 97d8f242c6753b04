package state

import "fmt"

// Boundary decides what happens when moving past the first or last row.
type Boundary int

const (
	// BoundaryClamp keeps the cursor on the edge row.
	BoundaryClamp Boundary = iota
	// BoundaryWrap moves from the last row to the first and back.
	BoundaryWrap
)

func (b Boundary) String() string {
	switch b {
	case BoundaryClamp:
		return "clamp"
	case BoundaryWrap:
		return "wrap"
	default:
		return fmt.Sprintf("boundary(%d)", int(b))
	}
}

// ParseBoundary accepts "clamp" or "wrap".
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "", "clamp":
		return BoundaryClamp, nil
	case "wrap":
		return BoundaryWrap, nil
	}
	return BoundaryClamp, fmt.Errorf("unknown boundary policy %q (want clamp or wrap)", s)
}

// ClampRow forces row into [0, n-1]. Empty screens yield 0.
func ClampRow(row, n int) int {
	if n <= 0 || row < 0 {
		return 0
	}
	if row >= n {
		return n - 1
	}
	return row
}

// MoveRow shifts row by delta within n rows under the boundary policy.
func MoveRow(row, delta, n int, policy Boundary) int {
	if n <= 0 {
		return 0
	}
	row = ClampRow(row, n)
	next := row + delta
	switch policy {
	case BoundaryWrap:
		next %= n
		if next < 0 {
			next += n
		}
		return next
	default:
		return ClampRow(next, n)
	}
}
