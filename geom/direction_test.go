package geom

import "testing"

func TestClockwise(t *testing.T) {
	tests := []struct {
		from, to Direction
	}{
		{DirectionLeft, DirectionUp},
		{DirectionUp, DirectionRight},
		{DirectionRight, DirectionDown},
		{DirectionDown, DirectionLeft},
	}

	for _, tt := range tests {
		if got := tt.from.Clockwise(); got != tt.to {
			t.Errorf("%v.Clockwise() = %v, want %v", tt.from, got, tt.to)
		}
		// CounterClockwise is the exact inverse.
		if got := tt.to.CounterClockwise(); got != tt.from {
			t.Errorf("%v.CounterClockwise() = %v, want %v", tt.to, got, tt.from)
		}
	}
}

func TestRotationIdentities(t *testing.T) {
	for _, d := range Directions() {
		if got := d.Clockwise().Clockwise().Clockwise().Clockwise(); got != d {
			t.Errorf("four clockwise turns from %v landed on %v", d, got)
		}
		if got := d.Clockwise().CounterClockwise(); got != d {
			t.Errorf("clockwise then counterclockwise from %v landed on %v", d, got)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("double opposite of %v landed on %v", d, got)
		}
	}
}

func TestVector(t *testing.T) {
	tests := []struct {
		d    Direction
		want Point[int]
	}{
		{DirectionLeft, Pt(-1, 0)},
		{DirectionRight, Pt(1, 0)},
		{DirectionUp, Pt(0, -1)},
		{DirectionDown, Pt(0, 1)},
	}

	for _, tt := range tests {
		if got := tt.d.Vector(); got != tt.want {
			t.Errorf("%v.Vector() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestVectorAdvancesPosition(t *testing.T) {
	// Moving up decreases y under the screen convention.
	pos := Pt(5, 5)
	if got := pos.Add(DirectionUp.Vector()); got != Pt(5, 4) {
		t.Errorf("up from %v = %v, want %v", pos, got, Pt(5, 4))
	}

	// One step in every direction and back returns home.
	for _, d := range Directions() {
		if got := pos.Add(d.Vector()).Add(d.Opposite().Vector()); got != pos {
			t.Errorf("step %v and back landed on %v", d, got)
		}
	}
}

func TestDirectionString(t *testing.T) {
	names := map[Direction]string{
		DirectionLeft:  "left",
		DirectionRight: "right",
		DirectionUp:    "up",
		DirectionDown:  "down",
		Direction(42):  "unknown",
	}
	for d, want := range names {
		if got := d.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(d), got, want)
		}
	}
}
