package walk

import (
	"fmt"

	"github.com/samdwyer/gridgeom/geom"
)

// ArenaDef defines an arena loaded from JSON.
type ArenaDef struct {
	Name   string    `json:"name"`   // Display name shown in the HUD
	Width  int       `json:"width"`  // Number of columns
	Height int       `json:"height"` // Number of rows
	Start  cellDef   `json:"start"`  // Walker starting cell
	Walls  []cellDef `json:"walls"`  // Interior wall cells
}

// cellDef is a single cell position in an arena definition.
type cellDef struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Arena is a rectangular walkable grid built from an ArenaDef. Tiles are
// row-major, addressed [y][x] through geom.
type Arena struct {
	Name  string
	Tiles [][]Tile
	Start geom.Point[int]
}

// LoadArena builds the named arena from the embedded definitions.
func LoadArena(name string) (*Arena, error) {
	def, err := load[ArenaDef]("arenas/" + name + ".json")
	if err != nil {
		return nil, err
	}
	return NewArena(def)
}

// NewArena validates a definition and builds its tile grid: a wall border,
// floor inside, plus the definition's interior walls.
func NewArena(def ArenaDef) (*Arena, error) {
	if def.Width < 3 || def.Height < 3 {
		return nil, fmt.Errorf("arena %q too small: %dx%d", def.Name, def.Width, def.Height)
	}

	tiles := make([][]Tile, def.Height)
	for y := range tiles {
		tiles[y] = make([]Tile, def.Width)
		for x := range tiles[y] {
			if x == 0 || x == def.Width-1 || y == 0 || y == def.Height-1 {
				tiles[y][x] = TileWall
			} else {
				tiles[y][x] = TileFloor
			}
		}
	}

	a := &Arena{
		Name:  def.Name,
		Tiles: tiles,
		Start: geom.Pt(def.Start.X, def.Start.Y),
	}
	for _, w := range def.Walls {
		p := geom.Pt(w.X, w.Y)
		if !a.Contains(p) {
			return nil, fmt.Errorf("arena %q: wall %v outside the grid", def.Name, p)
		}
		geom.Set(a.Tiles, p, TileWall)
	}

	if !a.Contains(a.Start) || !a.Passable(a.Start) {
		return nil, fmt.Errorf("arena %q: start %v is not a floor cell", def.Name, a.Start)
	}
	return a, nil
}

// Bounds returns the arena's corner points, upper-left and lower-right
// inclusive.
func (a *Arena) Bounds() (ul, lr geom.Point[int]) {
	return geom.Pt(0, 0), geom.Pt(a.Width()-1, a.Height()-1)
}

// Width returns the number of columns.
func (a *Arena) Width() int {
	if len(a.Tiles) == 0 {
		return 0
	}
	return len(a.Tiles[0])
}

// Height returns the number of rows.
func (a *Arena) Height() int {
	return len(a.Tiles)
}

// Contains reports whether the point lies on the grid at all.
func (a *Arena) Contains(p geom.Point[int]) bool {
	ul, lr := a.Bounds()
	return p.Between(ul, lr)
}

// Tile returns the tile at the given point, or TileWall for points off
// the grid.
func (a *Arena) Tile(p geom.Point[int]) Tile {
	if !a.Contains(p) {
		return TileWall
	}
	return geom.At(a.Tiles, p)
}

// Passable reports whether the walker may stand on the given point.
func (a *Arena) Passable(p geom.Point[int]) bool {
	return a.Contains(p) && geom.At(a.Tiles, p).IsPassable()
}

// String renders the arena as newline-joined rows of tile characters.
func (a *Arena) String() string {
	return geom.Sprint(a.Tiles)
}
