package encdag

import (
	"fmt"

	lvlathcore "github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/elyrion/platsat/pkg/platform"
)

// EncodingDag is the partial-order DAG over footprint dimensions and
// offset points: acyclic, stored alongside its transitive reduction R and
// transitive closure C, both indexed in topological order. It is built
// once per catalog and is read-only thereafter.
type EncodingDag struct {
	nodes []Node       // topological order
	index map[Node]int // node -> position in nodes

	// reach[i][j] holds iff nodes[i] < nodes[j] in C (the full transitive
	// closure; the underlying partial order is itself transitive, so this
	// is exactly the edge set of C).
	reach [][]bool

	// reducedSucc[i] holds the topo-indices of i's immediate successors in
	// R: j such that reach[i][j] and no k with reach[i][k] && reach[k][j].
	reducedSucc [][]int
}

// Build constructs the encoding DAG for catalog; it depends only on the
// catalog, not on any particular world. It seeds a Platform node per
// effective footprint dimension and a Point node per offset within the
// catalog's maximum enclosing rectangle, prunes Point nodes with no
// incident edge, topologically sorts the remainder via
// github.com/katalvlaran/lvlath/dfs, and computes the transitive
// reduction and closure over the topo-ordered node list.
func Build(catalog platform.Catalog) (*EncodingDag, error) {
	effDims := catalog.EffectiveDims()
	dmax := catalog.MaxDims()
	offsets := dmax.IterWithin()

	candidates := make([]Node, 0, len(effDims)+len(offsets))
	for _, d := range effDims {
		candidates = append(candidates, PlatformNode(d))
	}
	for _, p := range offsets {
		candidates = append(candidates, PointNode(p))
	}

	incident := make([]bool, len(candidates))
	for i, a := range candidates {
		for j, b := range candidates {
			if i == j {
				continue
			}
			if less(a, b) {
				incident[i] = true
				incident[j] = true
			}
		}
	}

	kept := make([]Node, 0, len(candidates))
	for i, n := range candidates {
		if n.Kind == NodePoint && !incident[i] {
			continue
		}
		kept = append(kept, n)
	}

	g := lvlathcore.NewGraph(lvlathcore.WithDirected(true))
	for _, n := range kept {
		if err := g.AddVertex(n.id()); err != nil {
			return nil, fmt.Errorf("encdag: adding vertex %s: %w", n.id(), err)
		}
	}
	for _, a := range kept {
		for _, b := range kept {
			if a == b {
				continue
			}
			if less(a, b) {
				if _, err := g.AddEdge(a.id(), b.id(), 0); err != nil {
					return nil, fmt.Errorf("encdag: adding edge %s->%s: %w", a.id(), b.id(), err)
				}
			}
		}
	}

	topoIDs, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("encdag: topological sort: %w", err)
	}

	byID := make(map[string]Node, len(kept))
	for _, n := range kept {
		byID[n.id()] = n
	}

	nodes := make([]Node, len(topoIDs))
	index := make(map[Node]int, len(topoIDs))
	for pos, id := range topoIDs {
		n := byID[id]
		nodes[pos] = n
		index[n] = pos
	}

	n := len(nodes)
	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
		for j := range reach[i] {
			if i != j {
				reach[i][j] = less(nodes[i], nodes[j])
			}
		}
	}

	reducedSucc := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !reach[i][j] {
				continue
			}
			direct := true
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if reach[i][k] && reach[k][j] {
					direct = false
					break
				}
			}
			if direct {
				reducedSucc[i] = append(reducedSucc[i], j)
			}
		}
	}

	return &EncodingDag{nodes: nodes, index: index, reach: reach, reducedSucc: reducedSucc}, nil
}

// Nodes returns every node of the DAG in topological order.
func (d *EncodingDag) Nodes() []Node {
	return append([]Node(nil), d.nodes...)
}

// IndexOf returns n's position in the DAG's topological order.
func (d *EncodingDag) IndexOf(n Node) (int, bool) {
	i, ok := d.index[n]
	return i, ok
}
