package validate

import (
	"fmt"
	"sort"

	"github.com/elyrion/platsat/pkg/encvars"
	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/layout"
	"github.com/elyrion/platsat/pkg/platform"
	"github.com/elyrion/platsat/pkg/world"
)

// tile is the validator's own per-cell bookkeeping; it is unrelated to
// anything the encoder allocates.
type tile struct {
	terrainSupported *bool // nil for non-terrain cells
	occupiedBy       *platform.Platform
}

// Result is the independent validator's findings. A correctly emitted
// encoding paired with a correct solver should always produce an empty
// Result; a non-empty one is diagnostic data, not necessarily an error a
// caller must reject.
type Result struct {
	UnsupportedTerrain   []geom.Point
	OverlappingPlatforms []platform.Platform
	OutOfBoundsPlatforms []platform.Platform
}

// IsValid reports whether every finding set is empty.
func (r Result) IsValid() bool {
	return len(r.UnsupportedTerrain) == 0 &&
		len(r.OverlappingPlatforms) == 0 &&
		len(r.OutOfBoundsPlatforms) == 0
}

// ErrorPrintout groups one finding category under a header, formatted for
// a driver's diagnostic output.
type ErrorPrintout struct {
	Header string
	Items  []string
}

// IterErrorPrintouts renders r's non-empty finding sets, in a fixed order:
// unsupported terrain, overlapping platforms, out-of-bounds platforms.
func (r Result) IterErrorPrintouts() []ErrorPrintout {
	var out []ErrorPrintout
	if len(r.UnsupportedTerrain) > 0 {
		items := make([]string, len(r.UnsupportedTerrain))
		for i, p := range r.UnsupportedTerrain {
			items[i] = fmt.Sprintf("(%3d;%3d)", p.X, p.Y)
		}
		out = append(out, ErrorPrintout{Header: "unsupported terrain", Items: items})
	}
	if len(r.OverlappingPlatforms) > 0 {
		out = append(out, ErrorPrintout{Header: "overlapping platforms", Items: formatPlatforms(r.OverlappingPlatforms)})
	}
	if len(r.OutOfBoundsPlatforms) > 0 {
		out = append(out, ErrorPrintout{Header: "out-of-bounds platforms", Items: formatPlatforms(r.OutOfBoundsPlatforms)})
	}
	return out
}

func formatPlatforms(ps []platform.Platform) []string {
	items := make([]string, len(ps))
	for i, p := range ps {
		d := p.EffectiveDims()
		items[i] = fmt.Sprintf("%dx%d at (%3d;%3d)", d.W, d.H, p.Origin.X, p.Origin.Y)
	}
	return items
}

// Validate checks l against w. It paints every placed platform's footprint
// onto a tracking grid, noting overlaps and out-of-bounds cells as it
// goes, marks terrain directly under a platform as supported, then runs
// TerrainSupportDistance-1 rounds of neighborhood diffusion before
// collecting whatever terrain is still unsupported.
func Validate(l *layout.PlatformLayout, w *world.World) Result {
	dims := w.Dims()
	grid := geom.NewGridFunc(dims, func(p geom.Point) tile {
		if !w.IsTerrain(p) {
			return tile{}
		}
		supported := false
		return tile{terrainSupported: &supported}
	})

	overlapping := make(map[platform.Platform]bool)
	outOfBounds := make(map[platform.Platform]bool)

	for _, plat := range l.Platforms() {
		plat := plat
		for _, offset := range plat.EffectiveDims().IterWithin() {
			point := plat.Origin.Add(offset)
			t, ok := grid.Get(point)
			if !ok {
				outOfBounds[plat] = true
				continue
			}
			if t.occupiedBy != nil {
				overlapping[plat] = true
				overlapping[*t.occupiedBy] = true
			} else {
				t.occupiedBy = &plat
			}
			if t.terrainSupported != nil {
				supported := true
				t.terrainSupported = &supported
			}
			grid.Set(point, t)
		}
	}

	for round := 0; round < encvars.TerrainSupportDistance-1; round++ {
		frontier := make(map[geom.Point]bool)
		grid.Enumerate(func(p geom.Point, t tile) {
			if t.terrainSupported != nil && *t.terrainSupported {
				for _, q := range p.Neighbors() {
					frontier[q] = true
				}
			}
		})
		for q := range frontier {
			t, ok := grid.Get(q)
			if !ok || t.terrainSupported == nil {
				continue
			}
			supported := true
			t.terrainSupported = &supported
			grid.Set(q, t)
		}
	}

	var unsupported []geom.Point
	grid.Enumerate(func(p geom.Point, t tile) {
		if t.terrainSupported != nil && !*t.terrainSupported {
			unsupported = append(unsupported, p)
		}
	})

	return Result{
		UnsupportedTerrain:   unsupported,
		OverlappingPlatforms: sortedPlatforms(overlapping),
		OutOfBoundsPlatforms: sortedPlatforms(outOfBounds),
	}
}

func sortedPlatforms(set map[platform.Platform]bool) []platform.Platform {
	if len(set) == 0 {
		return nil
	}
	out := make([]platform.Platform, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Origin.Y != b.Origin.Y {
			return a.Origin.Y < b.Origin.Y
		}
		if a.Origin.X != b.Origin.X {
			return a.Origin.X < b.Origin.X
		}
		da, db := a.EffectiveDims(), b.EffectiveDims()
		if da.W != db.W {
			return da.W < db.W
		}
		return da.H < db.H
	})
	return out
}
