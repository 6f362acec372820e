package geom

import "testing"

func TestAtAndSet(t *testing.T) {
	grid := [][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	}

	// Row index is y, column index is x.
	if got := At(grid, Pt(2, 1)); got != "f" {
		t.Errorf("At(2,1) = %q, want %q", got, "f")
	}
	if got := At(grid, Pt(0, 0)); got != "a" {
		t.Errorf("At(0,0) = %q, want %q", got, "a")
	}

	Set(grid, Pt(1, 0), "B")
	if grid[0][1] != "B" {
		t.Errorf("Set(1,0) wrote %q at [0][1]", grid[0][1])
	}
}

func TestAtUnsignedPoint(t *testing.T) {
	grid := [][]int{{10, 20}, {30, 40}}
	if got := At(grid, Pt[uint8](1, 1)); got != 40 {
		t.Errorf("At with uint8 point = %d, want 40", got)
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At outside the grid did not panic")
		}
	}()
	grid := [][]int{{1}}
	At(grid, Pt(0, 5))
}

func TestSprint(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{"two by two", [][]string{{"a", "b"}, {"c", "d"}}, "ab\ncd"},
		{"single row", [][]string{{"x", "y", "z"}}, "xyz"},
		{"empty", nil, ""},
		{"empty rows", [][]string{{}, {}}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.rows); got != tt.want {
				t.Errorf("Sprint = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSprintNonString(t *testing.T) {
	grid := [][]int{{1, 2}, {3, 4}}
	if got := Sprint(grid); got != "12\n34" {
		t.Errorf("Sprint over ints = %q, want %q", got, "12\n34")
	}
}
