package encoder

import "github.com/elyrion/platsat/pkg/platform"

// PlatformLimits bundles the optional per-footprint cardinality bounds,
// per-footprint weights, and global weight budget Encode may lower into
// cardinality/weight constraints on the instance.
type PlatformLimits struct {
	// CardLimits maps a catalog definition to the maximum number of
	// placements of that definition (in either orientation) anywhere in
	// the world.
	CardLimits map[platform.Def]int

	// Weights maps a catalog definition to its integer cost, used by the
	// weighted-sum objective and by WeightLimit.
	Weights map[platform.Def]int

	// WeightLimit, if non-nil, bounds the total weighted sum of active
	// placements.
	WeightLimit *int
}

// NewPlatformLimits builds an empty PlatformLimits: no cardinality
// bounds, no weights, no weight budget.
func NewPlatformLimits() *PlatformLimits {
	return &PlatformLimits{
		CardLimits: make(map[platform.Def]int),
		Weights:    make(map[platform.Def]int),
	}
}
