package geom

import (
	"fmt"
	"strings"
)

// At reads the cell a point addresses in a row-major grid, row index y and
// column index x. Coordinates outside the grid panic with the native
// index-out-of-range fault; no bounds check happens here.
func At[E any, T Scalar](rows [][]E, p Point[T]) E {
	return rows[p.Y][p.X]
}

// Set writes the cell a point addresses in a row-major grid. Bounds
// behavior matches At.
func Set[E any, T Scalar](rows [][]E, p Point[T], v E) {
	rows[p.Y][p.X] = v
}

// Sprint renders a row-major grid as text: one line per row, cells
// concatenated with no separator, rows joined by newlines. Cells format
// as fmt prints them. An empty grid renders as the empty string.
func Sprint[E any](rows [][]E) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			fmt.Fprint(&b, cell)
		}
	}
	return b.String()
}
