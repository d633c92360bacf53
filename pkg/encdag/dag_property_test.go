package encdag

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/elyrion/platsat/pkg/platform"
)

// randomCatalog draws a small catalog of distinct footprint dimensions, small
// enough that Build's O(n^2)/O(n^3) passes stay fast under rapid's shrinking.
func randomCatalog(t *rapid.T) platform.Catalog {
	n := rapid.IntRange(1, 5).Draw(t, "n")
	seen := make(map[[2]uint]bool, n)
	var defs []platform.Def
	for i := 0; i < n; i++ {
		w := uint(rapid.IntRange(1, 4).Draw(t, "w"))
		h := uint(rapid.IntRange(1, 4).Draw(t, "h"))
		key := [2]uint{w, h}
		if seen[key] {
			continue
		}
		seen[key] = true
		defs = append(defs, platform.NewDef(w, h))
	}
	if len(defs) == 0 {
		defs = append(defs, platform.NewDef(1, 1))
	}
	return platform.NewCatalog(defs...)
}

// TestReducedEdgesHaveNoShortcut checks that R, the transitive reduction, never
// contains an edge i->j for which some intermediate k also satisfies i->k->j
// in the full closure: exactly the defining property of a reduction.
func TestReducedEdgesHaveNoShortcut(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cat := randomCatalog(t)
		dag, err := Build(cat)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		for _, e := range dag.ReducedEdges() {
			fi, _ := dag.IndexOf(e.From)
			ti, _ := dag.IndexOf(e.To)
			for k := range dag.nodes {
				if k == fi || k == ti {
					continue
				}
				if dag.reach[fi][k] && dag.reach[k][ti] {
					t.Fatalf("reduced edge %v -> %v has shortcut through %v", e.From, e.To, dag.nodes[k])
				}
			}
		}
	})
}

// TestTopologicalOrderRespectsClosure checks that every pair related in the
// transitive closure C is also ordered consistently in the node list, for
// randomized catalogs (a property-based generalization of
// TestTopologicalOrderRespectsEdges, which only checks R on fixed catalogs).
func TestTopologicalOrderRespectsClosure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cat := randomCatalog(t)
		dag, err := Build(cat)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		for i := range dag.nodes {
			for j := range dag.nodes {
				if dag.reach[i][j] && i >= j {
					t.Fatalf("closure edge %v -> %v violates topological order (%d >= %d)", dag.nodes[i], dag.nodes[j], i, j)
				}
			}
		}
	})
}
