// Package walk provides the interactive walker session: an arena grid, a
// cursor with a heading, and the trail of visited cells.
package walk

// Tile represents a single arena cell.
type Tile rune

const (
	// TileWall represents an impassable wall cell.
	TileWall Tile = '#'
	// TileFloor represents a passable floor cell.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String makes tiles print as their display character, so a tile grid
// renders cleanly through geom.Sprint.
func (t Tile) String() string {
	return string(rune(t))
}
