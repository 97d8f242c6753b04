package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"ID", "ITEMS", "TITLE"},
		{"main", "3", "Main Menu"},
		{"settings:audio", "12", "Audio"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"ID              ITEMS  TITLE",
		"main                3  Main Menu",
		"settings:audio     12  Audio",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRaggedAndWide(t *testing.T) {
	rows := [][]string{
		{"音楽", "x"},
		{"ab"},
	}
	got := Format(rows, nil)
	if got[0] != "音楽  x" {
		t.Fatalf("expected wide cell measured in cells, got %q", got[0])
	}
	if got[1] != "ab" {
		t.Fatalf("expected trailing padding dropped, got %q", got[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
