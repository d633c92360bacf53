package layout

import (
	"fmt"

	"github.com/elyrion/platsat/pkg/cnf"
	"github.com/elyrion/platsat/pkg/encvars"
	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/platform"
)

// ErrDecodeInvariantViolation reports that an origin has more than one
// active placement variable and no single platform among them strictly
// dominates the rest under the footprint partial order. A correctly
// emitted encoding together with a correct solver should never produce
// this; seeing it means the encoder or solver misbehaved.
type ErrDecodeInvariantViolation struct {
	Origin     geom.Point
	Candidates []platform.Platform
}

func (e *ErrDecodeInvariantViolation) Error() string {
	return fmt.Sprintf("layout: origin %v has %d active platforms with no unique maximum: %v", e.Origin, len(e.Candidates), e.Candidates)
}

// PlatformLayout is the decoded mapping of placement origin to the single
// platform occupying it.
type PlatformLayout struct {
	byOrigin map[geom.Point]platform.Platform
}

// FromAssignment decodes a satisfying assignment into a PlatformLayout.
// For every tile and every effective footprint dimension, it reads the
// corresponding placement variable; tiles with more than one true
// placement variable are resolved by keeping the platform with strictly
// greatest dimensions under the partial order.
func FromAssignment(assignment *cnf.Assignment, ev *encvars.EncodingVars) (*PlatformLayout, error) {
	cat := ev.Catalog()
	effDims := ev.EffectiveDims()

	groups := make(map[geom.Point][]platform.Platform)
	for _, p := range ev.Dims().IterWithin() {
		for _, d := range effDims {
			v, ok := ev.ForDimsAt(p, d)
			if !ok {
				continue
			}
			if !assignment.LitTrue(cnf.PosLit(v)) {
				continue
			}
			def, rotated, ok := cat.DefFor(d)
			if !ok {
				continue
			}
			groups[p] = append(groups[p], platform.NewPlatform(p, def, rotated))
		}
	}

	byOrigin := make(map[geom.Point]platform.Platform, len(groups))
	for origin, candidates := range groups {
		best, err := pickUniqueMaximum(origin, candidates)
		if err != nil {
			return nil, err
		}
		byOrigin[origin] = best
	}
	return &PlatformLayout{byOrigin: byOrigin}, nil
}

// pickUniqueMaximum returns the one candidate whose effective dimensions
// strictly dominate every other candidate's. A singleton group trivially
// qualifies.
func pickUniqueMaximum(origin geom.Point, candidates []platform.Platform) (platform.Platform, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	for _, c := range candidates {
		dominates := true
		for _, other := range candidates {
			if other == c {
				continue
			}
			if !other.EffectiveDims().Less(c.EffectiveDims()) {
				dominates = false
				break
			}
		}
		if dominates {
			return c, nil
		}
	}
	return platform.Platform{}, &ErrDecodeInvariantViolation{Origin: origin, Candidates: append([]platform.Platform(nil), candidates...)}
}

// PlatformCount returns the total number of placed platforms.
func (l *PlatformLayout) PlatformCount() int {
	return len(l.byOrigin)
}

// GetPlatform returns the platform placed at origin, if any.
func (l *PlatformLayout) GetPlatform(origin geom.Point) (platform.Platform, bool) {
	p, ok := l.byOrigin[origin]
	return p, ok
}

// Platforms returns every placed platform, in no particular order.
func (l *PlatformLayout) Platforms() []platform.Platform {
	out := make([]platform.Platform, 0, len(l.byOrigin))
	for _, p := range l.byOrigin {
		out = append(out, p)
	}
	return out
}

// PlatformStats returns the multiplicity of each platform definition
// across the layout, keyed by native (unrotated) Def.
func (l *PlatformLayout) PlatformStats() map[platform.Def]int {
	stats := make(map[platform.Def]int)
	for _, p := range l.byOrigin {
		stats[p.Def]++
	}
	return stats
}

// PlatformWeightSum returns Σ weights[def.Dims] * count(def) across the
// layout. Definitions absent from weights contribute zero.
func (l *PlatformLayout) PlatformWeightSum(weights map[platform.Def]int) int {
	sum := 0
	for _, p := range l.byOrigin {
		sum += weights[p.Def]
	}
	return sum
}
