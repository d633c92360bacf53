package platform

import (
	"sort"

	"github.com/elyrion/platsat/pkg/geom"
)

// ErrCatalogEmpty names the situation of a Catalog with no platform
// definitions. Nothing in this module returns it: encoding against an
// empty catalog is not itself an error (it is correct UNSAT behavior for
// non-empty terrain) — this sentinel is for callers that want to
// special-case the situation before encoding.
var ErrCatalogEmpty = catalogEmptyError{}

type catalogEmptyError struct{}

func (catalogEmptyError) Error() string { return "platform: catalog has no definitions" }

// Catalog is a finite list of platform definitions available for
// placement.
type Catalog struct {
	defs []Def
}

// NewCatalog builds a Catalog from a list of definitions.
func NewCatalog(defs ...Def) Catalog {
	return Catalog{defs: append([]Def(nil), defs...)}
}

// Defs returns the catalog's definitions in insertion order.
func (c Catalog) Defs() []Def {
	return append([]Def(nil), c.defs...)
}

// Empty reports whether the catalog has no definitions.
func (c Catalog) Empty() bool {
	return len(c.defs) == 0
}

// EffectiveDims returns the set S of effective footprint dimensions: every
// catalog entry's native dimensions plus its rotated (width/height
// swapped) variant, deduplicated and returned in a deterministic order
// (by width, then height).
//
// Each distinct ordered (w,h) appears once: a square def contributes one
// entry, a non-square def contributes two (native and swapped), and dims
// shared by several defs are listed once. The encoder works purely on
// this dimension set, and the originating Def plus rotation flag is
// recovered at decode time via DefFor.
func (c Catalog) EffectiveDims() []geom.Dimensions {
	seen := make(map[geom.Dimensions]struct{})
	var out []geom.Dimensions
	add := func(d geom.Dimensions) {
		if d.Empty() {
			return
		}
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	for _, def := range c.defs {
		add(def.Dims)
		add(def.Dims.Swap())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].W != out[j].W {
			return out[i].W < out[j].W
		}
		return out[i].H < out[j].H
	})
	return out
}

// MaxDims returns the componentwise maximum width and height across every
// effective footprint dimension, i.e. the smallest rectangle that encloses
// every catalog footprint in any orientation. This is the maximum
// enclosing rectangle the encoding DAG is built over.
func (c Catalog) MaxDims() geom.Dimensions {
	var maxW, maxH uint
	for _, d := range c.EffectiveDims() {
		if d.W > maxW {
			maxW = d.W
		}
		if d.H > maxH {
			maxH = d.H
		}
	}
	return geom.NewDimensions(maxW, maxH)
}

// DefFor chooses a representative Def for an effective footprint
// dimension, and whether a rotation must be applied to reach it. It
// returns ok=false if no catalog entry's native or swapped dimensions
// equal dims.
func (c Catalog) DefFor(dims geom.Dimensions) (def Def, rotated bool, ok bool) {
	for _, candidate := range c.defs {
		if candidate.Dims == dims {
			return candidate, false, true
		}
	}
	for _, candidate := range c.defs {
		if candidate.Dims.Swap() == dims {
			return candidate, true, true
		}
	}
	return Def{}, false, false
}
