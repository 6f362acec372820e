package walk

import (
	"strings"
	"testing"

	"github.com/samdwyer/gridgeom/geom"
)

func TestLoadEmbeddedArenas(t *testing.T) {
	for _, name := range []string{"courtyard", "corridor"} {
		a, err := LoadArena(name)
		if err != nil {
			t.Fatalf("LoadArena(%q) returned error: %v", name, err)
		}
		if a.Width() < 3 || a.Height() < 3 {
			t.Errorf("arena %q has degenerate size %dx%d", name, a.Width(), a.Height())
		}
		if !a.Passable(a.Start) {
			t.Errorf("arena %q start %v is not passable", name, a.Start)
		}
	}
}

func TestLoadArenaMissing(t *testing.T) {
	if _, err := LoadArena("no-such-arena"); err == nil {
		t.Error("LoadArena of a missing arena succeeded")
	}
}

func TestNewArenaBorder(t *testing.T) {
	a, err := NewArena(ArenaDef{
		Name:   "test",
		Width:  5,
		Height: 4,
		Start:  cellDef{X: 2, Y: 2},
	})
	if err != nil {
		t.Fatalf("NewArena returned error: %v", err)
	}

	ul, lr := a.Bounds()
	if ul != geom.Pt(0, 0) || lr != geom.Pt(4, 3) {
		t.Fatalf("Bounds() = %v, %v", ul, lr)
	}

	// Every border cell is wall, interior is floor.
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			p := geom.Pt(x, y)
			onBorder := x == 0 || y == 0 || x == a.Width()-1 || y == a.Height()-1
			if got := a.Tile(p) == TileWall; got != onBorder {
				t.Errorf("tile at %v: wall=%v, want %v", p, got, onBorder)
			}
		}
	}
}

func TestNewArenaRejectsBadDefs(t *testing.T) {
	tests := []struct {
		name string
		def  ArenaDef
	}{
		{"too small", ArenaDef{Width: 2, Height: 2}},
		{"wall off grid", ArenaDef{
			Width: 5, Height: 5,
			Start: cellDef{X: 1, Y: 1},
			Walls: []cellDef{{X: 9, Y: 9}},
		}},
		{"start in wall", ArenaDef{
			Width: 5, Height: 5,
			Start: cellDef{X: 0, Y: 0},
		}},
		{"start on interior wall", ArenaDef{
			Width: 5, Height: 5,
			Start: cellDef{X: 2, Y: 2},
			Walls: []cellDef{{X: 2, Y: 2}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewArena(tt.def); err == nil {
				t.Error("NewArena accepted a bad definition")
			}
		})
	}
}

func TestArenaString(t *testing.T) {
	a, err := NewArena(ArenaDef{
		Name:   "tiny",
		Width:  4,
		Height: 3,
		Start:  cellDef{X: 1, Y: 1},
	})
	if err != nil {
		t.Fatalf("NewArena returned error: %v", err)
	}

	want := strings.Join([]string{
		"####",
		"#..#",
		"####",
	}, "\n")
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
