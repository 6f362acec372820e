package walk

import "github.com/samdwyer/gridgeom/geom"

// Walker is the cursor moving through an arena. It remembers where it
// started, which way it faces, and every cell it has stood on.
type Walker struct {
	Pos     geom.Point[int]
	Start   geom.Point[int]
	Heading geom.Direction
	trail   map[geom.Point[int]]bool
}

// NewWalker creates a walker at the given starting position, facing up.
func NewWalker(start geom.Point[int]) *Walker {
	return &Walker{
		Pos:     start,
		Start:   start,
		Heading: geom.DirectionUp,
		trail:   map[geom.Point[int]]bool{start: true},
	}
}

// Step tries to move one cell in the given direction. The move is refused
// if the target cell is a wall or off the arena. Returns true if the
// walker moved.
func (w *Walker) Step(d geom.Direction, a *Arena) bool {
	next := w.Pos.Add(d.Vector())
	if !a.Passable(next) {
		return false
	}
	w.Pos = next
	w.trail[next] = true
	return true
}

// Forward steps one cell in the walker's current heading.
func (w *Walker) Forward(a *Arena) bool {
	return w.Step(w.Heading, a)
}

// TurnRight rotates the heading a quarter turn clockwise.
func (w *Walker) TurnRight() {
	w.Heading = w.Heading.Clockwise()
}

// TurnLeft rotates the heading a quarter turn counterclockwise.
func (w *Walker) TurnLeft() {
	w.Heading = w.Heading.CounterClockwise()
}

// DistanceFromStart returns the Manhattan distance back to the starting
// cell.
func (w *Walker) DistanceFromStart() uint64 {
	return w.Pos.Distance(w.Start)
}

// Visited reports whether the walker has ever stood on the given cell.
func (w *Walker) Visited(p geom.Point[int]) bool {
	return w.trail[p]
}

// Steps returns the number of distinct cells visited, the start included.
func (w *Walker) Steps() int {
	return len(w.trail)
}
