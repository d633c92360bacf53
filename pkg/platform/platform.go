// Package platform defines the platform catalog: footprint definitions,
// concrete placed platforms, and the rotation-aware equivalence used to
// derive the set of effective footprint dimensions an encoder works over.
package platform

import (
	"fmt"

	"github.com/elyrion/platsat/pkg/geom"
)

// Def identifies a platform footprint by its native (unrotated)
// dimensions. Two Defs with identical dimensions are interchangeable for
// encoding purposes.
type Def struct {
	Dims geom.Dimensions
}

// NewDef builds a Def from a width and height.
func NewDef(w, h uint) Def {
	return Def{Dims: geom.NewDimensions(w, h)}
}

func (d Def) String() string {
	return fmt.Sprintf("%dx%d", d.Dims.W, d.Dims.H)
}

// Platform is a Def placed at an origin, optionally rotated 90 degrees.
type Platform struct {
	Origin  geom.Point
	Def     Def
	Rotated bool
}

// NewPlatform builds a Platform, recording whether it is rotated relative
// to its Def's native orientation.
func NewPlatform(origin geom.Point, def Def, rotated bool) Platform {
	return Platform{Origin: origin, Def: def, Rotated: rotated}
}

// EffectiveDims returns the Def's dimensions, transposed if Rotated.
func (p Platform) EffectiveDims() geom.Dimensions {
	if p.Rotated {
		return p.Def.Dims.Swap()
	}
	return p.Def.Dims
}

// AreaCorners returns the inclusive near and far corners of the area this
// platform covers.
func (p Platform) AreaCorners() (near, far geom.Point) {
	dims := p.EffectiveDims()
	near = p.Origin
	far = p.Origin.Add(geom.NewPoint(int(dims.W)-1, int(dims.H)-1))
	return near, far
}

// Overlaps reports whether p and other's footprints share any cell.
func (p Platform) Overlaps(other Platform) bool {
	selfNear, selfFar := p.AreaCorners()
	otherNear, otherFar := other.AreaCorners()

	return otherFar.X >= selfNear.X && otherFar.Y >= selfNear.Y &&
		otherNear.X <= selfFar.X && otherNear.Y <= selfFar.Y
}
