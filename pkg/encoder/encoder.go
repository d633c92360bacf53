package encoder

import (
	"fmt"

	"github.com/elyrion/platsat/pkg/cnf"
	"github.com/elyrion/platsat/pkg/encdag"
	"github.com/elyrion/platsat/pkg/encvars"
	"github.com/elyrion/platsat/pkg/geom"
	"github.com/elyrion/platsat/pkg/world"
)

// Encode emits the size-implication chain, the soundness disjunctions,
// terrain-support diffusion, terrain-to-platform binding, and (if limits
// is non-nil) cardinality/weight constraints into instance, over the
// variable table ev and the world-independent DAG dag, restricted to the
// tiles of w.
//
// Encode only records cardinality/weight constraints onto instance; it
// does not expand them into CNF. Call ExpandLimits before handing
// instance to a solver.
func Encode(instance *cnf.Instance, ev *encvars.EncodingVars, dag *encdag.EncodingDag, w *world.World, limits *PlatformLimits) error {
	if err := encodeSizeChain(instance, ev, dag, w); err != nil {
		return err
	}
	if err := encodeSoundnessDisjunctions(instance, ev, dag, w); err != nil {
		return err
	}
	if err := encodeTerrainDiffusion(instance, ev, w); err != nil {
		return err
	}
	if err := encodeTerrainBinding(instance, ev, dag, w); err != nil {
		return err
	}
	if limits != nil {
		if err := encodeLimits(instance, ev, limits); err != nil {
			return err
		}
	}
	return nil
}

// encodeSizeChain encodes the size-implication chain: for every reduced
// platform edge s -> l (smaller to larger) and every tile p, P(p,l)
// implies P(p,s).
func encodeSizeChain(instance *cnf.Instance, ev *encvars.EncodingVars, dag *encdag.EncodingDag, w *world.World) error {
	edges := dag.ReducedPlatformEdges()
	for _, p := range w.Dims().IterWithin() {
		for _, e := range edges {
			sVar, ok := ev.ForDimsAt(p, e.From.Dims)
			if !ok {
				continue
			}
			lVar, ok := ev.ForDimsAt(p, e.To.Dims)
			if !ok {
				continue
			}
			instance.AddImplication(cnf.PosLit(lVar), cnf.PosLit(sVar))
		}
	}
	return nil
}

type incomparablePair struct {
	a, b    encdag.Node
	maximal []encdag.Node
}

// incomparablePairs collects, once per unordered pair, every pair of
// distinct platforms that co-occur in some platform node's reduced
// out-set, along with the maximal common platform successors each pair
// requires for its soundness disjunction.
func incomparablePairs(dag *encdag.EncodingDag) []incomparablePair {
	type key struct{ a, b geom.Dimensions }
	normalize := func(a, b encdag.Node) key {
		if a.Dims.W < b.Dims.W || (a.Dims.W == b.Dims.W && a.Dims.H <= b.Dims.H) {
			return key{a.Dims, b.Dims}
		}
		return key{b.Dims, a.Dims}
	}

	seen := make(map[key]bool)
	var pairs []incomparablePair
	for _, n := range dag.Nodes() {
		if n.Kind != encdag.NodePlatform {
			continue
		}
		out := dag.OutSetPlatformSuccessors(n)
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				a, b := out[i], out[j]
				k := normalize(a, b)
				if seen[k] {
					continue
				}
				seen[k] = true
				common := dag.CommonPlatformSuccessors(a, b)
				pairs = append(pairs, incomparablePair{a: a, b: b, maximal: dag.MaximalFrom(common)})
			}
		}
	}
	return pairs
}

// encodeSoundnessDisjunctions forbids two incomparable footprints from
// both being active at the same tile unless some maximal common
// successor footprint is active too, closing the gap the size-chain
// alone leaves open between incomparable platform pairs.
func encodeSoundnessDisjunctions(instance *cnf.Instance, ev *encvars.EncodingVars, dag *encdag.EncodingDag, w *world.World) error {
	pairs := incomparablePairs(dag)
	for _, p := range w.Dims().IterWithin() {
		for _, pair := range pairs {
			aVar, ok := ev.ForDimsAt(p, pair.a.Dims)
			if !ok {
				continue
			}
			bVar, ok := ev.ForDimsAt(p, pair.b.Dims)
			if !ok {
				continue
			}
			clause := []cnf.Lit{cnf.NegLit(aVar), cnf.NegLit(bVar)}
			for _, c := range pair.maximal {
				if cVar, ok := ev.ForDimsAt(p, c.Dims); ok {
					clause = append(clause, cnf.PosLit(cVar))
				}
			}
			instance.AddClause(clause...)
		}
	}
	return nil
}

// encodeTerrainDiffusion encodes the fixed-depth terrain-support
// diffusion: layer 0 at a terrain tile is always asserted, and each
// layer i implies layer i+1 at the tile itself or one of its neighbors.
func encodeTerrainDiffusion(instance *cnf.Instance, ev *encvars.EncodingVars, w *world.World) error {
	for _, p := range ev.TerrainTiles() {
		layers, ok := ev.TerrainLayerVars(p)
		if !ok {
			continue
		}
		instance.AddUnit(cnf.PosLit(layers[0]))

		neighborhood := append([]geom.Point{p}, p.Neighbors()[:]...)
		for i := 0; i < len(layers)-1; i++ {
			var disjuncts []cnf.Lit
			for _, q := range neighborhood {
				if qLayers, ok := ev.TerrainLayerVars(q); ok {
					disjuncts = append(disjuncts, cnf.PosLit(qLayers[i+1]))
				}
			}
			instance.AddImplicationClause(cnf.PosLit(layers[i]), disjuncts)
		}
	}
	return nil
}

// encodeTerrainBinding requires that every terrain tile's deepest support
// layer be backed by some platform covering it: the deepest layer
// variable implies the disjunction of every placement that would cover
// the tile at that offset.
func encodeTerrainBinding(instance *cnf.Instance, ev *encvars.EncodingVars, dag *encdag.EncodingDag, w *world.World) error {
	edges := dag.ReducedPointToPlatformEdges()
	for _, p := range ev.TerrainTiles() {
		layers, ok := ev.TerrainLayerVars(p)
		if !ok {
			continue
		}
		topLayer := layers[len(layers)-1]

		var disjuncts []cnf.Lit
		for _, e := range edges {
			origin := p.Sub(e.From.Offset)
			if v, ok := ev.ForDimsAt(origin, e.To.Dims); ok {
				disjuncts = append(disjuncts, cnf.PosLit(v))
			}
		}
		instance.AddImplicationClause(cnf.PosLit(topLayer), disjuncts)
	}
	return nil
}

// encodeLimits records cardinality and weight constraints onto instance
// without expanding them; ExpandLimits performs the CNF lowering. A
// footprint with a distinct rotated sibling gets a shared auxiliary
// variable per tile so the cardinality bound counts both orientations
// together; the weight constraint likewise charges a definition's weight
// to its placement variables in both orientations.
func encodeLimits(instance *cnf.Instance, ev *encvars.EncodingVars, limits *PlatformLimits) error {
	effSet := make(map[geom.Dimensions]bool)
	for _, d := range ev.EffectiveDims() {
		effSet[d] = true
	}

	for def, bound := range limits.CardLimits {
		swap := def.Dims.Swap()
		hasDistinctSibling := swap != def.Dims && effSet[swap]

		if !hasDistinctSibling {
			lits := dimsLits(ev.IterDimsVars(def.Dims))
			instance.AddCardinalityAtMost(lits, bound)
			continue
		}

		native := ev.IterDimsVars(def.Dims)
		rotated := ev.IterDimsVars(swap)
		if len(native) != len(rotated) {
			return fmt.Errorf("encoder: mismatched tile counts for %v (%d) and its rotation (%d)", def, len(native), len(rotated))
		}

		auxLits := make([]cnf.Lit, len(native))
		for i := range native {
			y, err := ev.AllocAux()
			if err != nil {
				return fmt.Errorf("encoder: allocating rotation-aux var for %v: %w", def, err)
			}
			instance.AddImplication(cnf.PosLit(native[i]), cnf.PosLit(y))
			instance.AddImplication(cnf.PosLit(rotated[i]), cnf.PosLit(y))
			auxLits[i] = cnf.PosLit(y)
		}
		instance.AddCardinalityAtMost(auxLits, bound)
	}

	if limits.WeightLimit != nil {
		var lits []cnf.Lit
		var weights []int
		for def, weight := range limits.Weights {
			if weight == 0 {
				continue
			}
			weighted := []geom.Dimensions{def.Dims}
			if swap := def.Dims.Swap(); swap != def.Dims && effSet[swap] {
				weighted = append(weighted, swap)
			}
			for _, d := range weighted {
				for _, v := range ev.IterDimsVars(d) {
					lits = append(lits, cnf.PosLit(v))
					weights = append(weights, weight)
				}
			}
		}
		instance.AddWeightAtMost(lits, weights, *limits.WeightLimit)
	}

	return nil
}

func dimsLits(vars []cnf.Var) []cnf.Lit {
	lits := make([]cnf.Lit, len(vars))
	for i, v := range vars {
		lits[i] = cnf.PosLit(v)
	}
	return lits
}
