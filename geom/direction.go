package geom

// Direction is one of the four compass directions on a grid.
type Direction int

const (
	// DirectionLeft points toward negative x.
	DirectionLeft Direction = iota
	// DirectionRight points toward positive x.
	DirectionRight
	// DirectionUp points toward negative y, since y grows downward.
	DirectionUp
	// DirectionDown points toward positive y.
	DirectionDown
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// Clockwise returns the direction a quarter turn clockwise from d:
// left to up, up to right, right to down, down to left.
func (d Direction) Clockwise() Direction {
	switch d {
	case DirectionLeft:
		return DirectionUp
	case DirectionUp:
		return DirectionRight
	case DirectionRight:
		return DirectionDown
	default:
		return DirectionLeft
	}
}

// CounterClockwise returns the direction a quarter turn counterclockwise
// from d, the exact inverse of Clockwise.
func (d Direction) CounterClockwise() Direction {
	switch d {
	case DirectionUp:
		return DirectionLeft
	case DirectionRight:
		return DirectionUp
	case DirectionDown:
		return DirectionRight
	default:
		return DirectionDown
	}
}

// Opposite returns the direction a half turn from d.
func (d Direction) Opposite() Direction {
	return d.Clockwise().Clockwise()
}

// Vector returns the single-step displacement for d under the screen
// convention that y grows downward: up is (0,-1) and down is (0,1). Adding
// the result to a position advances it one cell in that direction.
func (d Direction) Vector() Point[int] {
	switch d {
	case DirectionLeft:
		return Point[int]{X: -1, Y: 0}
	case DirectionRight:
		return Point[int]{X: 1, Y: 0}
	case DirectionUp:
		return Point[int]{X: 0, Y: -1}
	default:
		return Point[int]{X: 0, Y: 1}
	}
}

// Directions lists all four directions for iteration.
func Directions() []Direction {
	return []Direction{DirectionLeft, DirectionRight, DirectionUp, DirectionDown}
}
