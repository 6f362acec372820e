package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax reports point text whose shape is wrong: missing fields,
// missing coordinate labels, or labels out of order. Number failures wrap
// the strconv error instead.
var ErrSyntax = errors.New("malformed point text")

// Point is a 2D coordinate or displacement. The same type serves both
// roles: a Point may name a grid cell or describe an offset between two
// cells, and every operation is valid under either reading.
//
// Points compare for equality structurally and are usable as map keys.
// No ordering is defined for 2D points; Point3D carries one instead.
type Point[T Scalar] struct {
	X, Y T
}

// Pt returns the point (x, y).
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// XY returns the point's coordinates as a pair.
func (p Point[T]) XY() (x, y T) {
	return p.X, p.Y
}

// Between reports whether p lies inside the box spanned by ul and lr,
// inclusive on all four edges. The origin is the upper-left corner, so ul
// must have the smaller coordinates on both axes; an inverted box contains
// nothing.
func (p Point[T]) Between(ul, lr Point[T]) bool {
	return p.X >= ul.X && p.X <= lr.X && p.Y >= ul.Y && p.Y <= lr.Y
}

// Distance returns the Manhattan distance between p and q, the sum of the
// absolute per-axis differences. Coordinates pass through int64 on the
// way, so T must be losslessly convertible to int64; uint64 values above
// the int64 range silently misbehave.
func (p Point[T]) Distance(q Point[T]) uint64 {
	return absDiff(int64(p.X), int64(q.X)) + absDiff(int64(p.Y), int64(q.Y))
}

// absDiff returns |a-b| without overflowing near the int64 limits.
func absDiff(a, b int64) uint64 {
	if a < b {
		a, b = b, a
	}
	return uint64(a) - uint64(b)
}

// Add returns p with q added axis-wise. Overflow wraps with Go's native
// integer semantics.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p with q subtracted axis-wise.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddXY returns p shifted by (dx, dy).
func (p Point[T]) AddXY(dx, dy T) Point[T] {
	return Point[T]{X: p.X + dx, Y: p.Y + dy}
}

// SubXY returns p shifted by (-dx, -dy).
func (p Point[T]) SubXY(dx, dy T) Point[T] {
	return Point[T]{X: p.X - dx, Y: p.Y - dy}
}

// Translate shifts p in place by q.
func (p *Point[T]) Translate(q Point[T]) {
	p.X += q.X
	p.Y += q.Y
}

// Move shifts p in place by (dx, dy).
func (p *Point[T]) Move(dx, dy T) {
	p.X += dx
	p.Y += dy
}

// String formats p in the same "x=<X>, y=<Y>" form ParsePoint reads.
func (p Point[T]) String() string {
	return fmt.Sprintf("x=%d, y=%d", p.X, p.Y)
}

// ParsePoint parses a 2D point from its labeled text form "x=<X>, y=<Y>".
// Each coordinate uses the scalar's plain decimal form, optionally signed.
// Missing or misnamed labels and malformed or out-of-range numbers all
// return an error wrapping ErrSyntax or the underlying strconv failure;
// trailing fields beyond y are ignored.
func ParsePoint[T Scalar](s string) (Point[T], error) {
	parts := strings.SplitN(s, ", ", 3)
	if len(parts) < 2 {
		return Point[T]{}, fmt.Errorf("parse point %q: %w", s, ErrSyntax)
	}

	xs, ok := strings.CutPrefix(parts[0], "x=")
	if !ok {
		return Point[T]{}, fmt.Errorf("parse point %q: missing x label: %w", s, ErrSyntax)
	}
	ys, ok := strings.CutPrefix(parts[1], "y=")
	if !ok {
		return Point[T]{}, fmt.Errorf("parse point %q: missing y label: %w", s, ErrSyntax)
	}

	x, err := parseScalar[T](xs)
	if err != nil {
		return Point[T]{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	y, err := parseScalar[T](ys)
	if err != nil {
		return Point[T]{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	return Point[T]{X: x, Y: y}, nil
}

// parseScalar parses a decimal coordinate into T, rejecting values outside
// T's range.
func parseScalar[T Scalar](s string) (T, error) {
	if signed[T]() {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		if n := T(v); int64(n) == v {
			return n, nil
		}
		return 0, fmt.Errorf("%q: %w", s, strconv.ErrRange)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n := T(v); uint64(n) == v {
		return n, nil
	}
	return 0, fmt.Errorf("%q: %w", s, strconv.ErrRange)
}
