package geom

import (
	"fmt"
	"strings"
)

// Point3D is a 3D coordinate or displacement. Unlike Point it carries a
// total order, lexicographic on (X, Y, Z); see Compare and Less.
type Point3D[T Scalar] struct {
	X, Y, Z T
}

// Pt3 returns the point (x, y, z).
func Pt3[T Scalar](x, y, z T) Point3D[T] {
	return Point3D[T]{X: x, Y: y, Z: z}
}

// XYZ returns the point's coordinates as a triple.
func (p Point3D[T]) XYZ() (x, y, z T) {
	return p.X, p.Y, p.Z
}

// Compare orders points lexicographically by (X, Y, Z), returning -1, 0,
// or 1. Suitable for slices.SortFunc.
func (p Point3D[T]) Compare(q Point3D[T]) int {
	switch {
	case p.X != q.X:
		return cmpScalar(p.X, q.X)
	case p.Y != q.Y:
		return cmpScalar(p.Y, q.Y)
	default:
		return cmpScalar(p.Z, q.Z)
	}
}

// Less reports whether p orders before q lexicographically.
func (p Point3D[T]) Less(q Point3D[T]) bool {
	return p.Compare(q) < 0
}

func cmpScalar[T Scalar](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Borders returns the six axis-aligned unit-step neighbors of p, in the
// fixed order x-1, x+1, y-1, y+1, z-1, z+1. Intended for signed scalars;
// with an unsigned T a zero coordinate wraps to T's maximum.
func (p Point3D[T]) Borders() [6]Point3D[T] {
	return [6]Point3D[T]{
		{p.X - 1, p.Y, p.Z},
		{p.X + 1, p.Y, p.Z},
		{p.X, p.Y - 1, p.Z},
		{p.X, p.Y + 1, p.Z},
		{p.X, p.Y, p.Z - 1},
		{p.X, p.Y, p.Z + 1},
	}
}

// Add returns p shifted by (dx, dy, dz).
func (p Point3D[T]) Add(dx, dy, dz T) Point3D[T] {
	return Point3D[T]{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Move shifts p in place by (dx, dy, dz).
func (p *Point3D[T]) Move(dx, dy, dz T) {
	p.X += dx
	p.Y += dy
	p.Z += dz
}

// String formats p in the same "<X>,<Y>,<Z>" form ParsePoint3D reads.
func (p Point3D[T]) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// ParsePoint3D parses a 3D point from unlabeled comma-separated text
// "<X>,<Y>,<Z>". A missing field or a coordinate that fails to parse as T
// returns an error.
func ParsePoint3D[T Scalar](s string) (Point3D[T], error) {
	parts := strings.SplitN(s, ",", 4)
	if len(parts) < 3 {
		return Point3D[T]{}, fmt.Errorf("parse point %q: %w", s, ErrSyntax)
	}

	var coords [3]T
	for i, field := range parts[:3] {
		v, err := parseScalar[T](field)
		if err != nil {
			return Point3D[T]{}, fmt.Errorf("parse point %q: %w", s, err)
		}
		coords[i] = v
	}
	return Point3D[T]{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
