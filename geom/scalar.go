// Package geom provides small generic geometric primitives for grid-based
// maps: 2D and 3D integer points, compass directions, and helpers for
// indexing and printing row-major grids. The coordinate convention
// throughout is screen-style: (0,0) is the top-left corner and y increases
// downward.
package geom

import "golang.org/x/exp/constraints"

// Scalar is the constraint on point coordinate types. Every built-in
// integer type satisfies it, signed or unsigned, 8 through 64 bits plus
// int and uint.
type Scalar interface {
	constraints.Integer
}

// signed reports whether T is a signed integer type.
func signed[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}
