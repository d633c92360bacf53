// Package world defines the terrain grid the encoder runs over, along
// with its textual YAML persistence form.
package world

import (
	"fmt"

	"github.com/elyrion/platsat/pkg/geom"
)

// World wraps a Grid[bool] where true marks a terrain cell that requires
// support.
type World struct {
	grid *geom.Grid[bool]
}

// NewWorld builds a World over the given dimensions, with every cell
// initially false (no terrain).
func NewWorld(dims geom.Dimensions) *World {
	return &World{grid: geom.NewGrid[bool](dims)}
}

// FromGrid wraps an existing bool grid as a World.
func FromGrid(g *geom.Grid[bool]) *World {
	return &World{grid: g}
}

// Grid returns the underlying terrain grid.
func (w *World) Grid() *geom.Grid[bool] {
	return w.grid
}

// Dims returns the world's dimensions.
func (w *World) Dims() geom.Dimensions {
	return w.grid.Dims()
}

// IsTerrain reports whether p is a terrain tile. Out-of-bounds points
// report false.
func (w *World) IsTerrain(p geom.Point) bool {
	v, _ := w.grid.Get(p)
	return v
}

// SetTerrain marks p as terrain (or clears it). It reports false if p is
// out of bounds.
func (w *World) SetTerrain(p geom.Point, terrain bool) bool {
	return w.grid.Set(p, terrain)
}

// TerrainCount returns the number of terrain cells.
func (w *World) TerrainCount() int {
	n := 0
	w.grid.Enumerate(func(_ geom.Point, v bool) {
		if v {
			n++
		}
	})
	return n
}

// rowStrings renders the world as one ' '/'X' string per row: ' ' for
// empty ground, 'X' for terrain.
func (w *World) rowStrings() []string {
	dims := w.grid.Dims()
	rows := make([]string, dims.H)
	for y := uint(0); y < dims.H; y++ {
		buf := make([]byte, dims.W)
		for x := uint(0); x < dims.W; x++ {
			if w.IsTerrain(geom.NewPoint(int(x), int(y))) {
				buf[x] = 'X'
			} else {
				buf[x] = ' '
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// fromRowStrings parses the ' '/'X' textual grid form into a World. Every
// row must share the same length; any other character is rejected.
func fromRowStrings(rows []string) (*World, error) {
	if len(rows) == 0 {
		return NewWorld(geom.NewDimensions(0, 0)), nil
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("world: row %d has length %d, want %d", i, len(row), width)
		}
	}

	dims := geom.NewDimensions(uint(width), uint(len(rows)))
	w := NewWorld(dims)
	for y, row := range rows {
		for x, c := range row {
			switch c {
			case 'X':
				w.SetTerrain(geom.NewPoint(x, y), true)
			case ' ':
				// no terrain
			default:
				return nil, fmt.Errorf("world: row %d col %d: invalid character %q, want 'X' or ' '", y, x, c)
			}
		}
	}
	return w, nil
}
