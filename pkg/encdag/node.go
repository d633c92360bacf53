package encdag

import (
	"fmt"

	"github.com/elyrion/platsat/pkg/geom"
)

// NodeKind discriminates the two kinds of node in an EncodingDag.
type NodeKind int

const (
	NodePlatform NodeKind = iota
	NodePoint
)

// Node is one vertex of the encoding DAG: either a catalog footprint
// dimension or a grid offset within the catalog's maximum enclosing
// rectangle. Node is comparable and usable as a map key.
type Node struct {
	Kind   NodeKind
	Dims   geom.Dimensions // valid when Kind == NodePlatform
	Offset geom.Point      // valid when Kind == NodePoint
}

// PlatformNode builds a Platform(d) node.
func PlatformNode(d geom.Dimensions) Node {
	return Node{Kind: NodePlatform, Dims: d}
}

// PointNode builds a Point(p) node.
func PointNode(p geom.Point) Node {
	return Node{Kind: NodePoint, Offset: p}
}

// id renders a stable textual vertex identity for the underlying graph
// library, which keys vertices by string.
func (n Node) id() string {
	switch n.Kind {
	case NodePlatform:
		return fmt.Sprintf("P:%dx%d", n.Dims.W, n.Dims.H)
	default:
		return fmt.Sprintf("O:%d,%d", n.Offset.X, n.Offset.Y)
	}
}

func (n Node) String() string {
	switch n.Kind {
	case NodePlatform:
		return fmt.Sprintf("Platform(%dx%d)", n.Dims.W, n.Dims.H)
	default:
		return fmt.Sprintf("Point(%d;%d)", n.Offset.X, n.Offset.Y)
	}
}

// less reports whether a is strictly less than b under the combined
// Platform/Point partial order: a platform is less than a strictly
// larger platform, and a point is less than any platform containing it.
func less(a, b Node) bool {
	switch {
	case a.Kind == NodePlatform && b.Kind == NodePlatform:
		return a.Dims.Less(b.Dims)
	case a.Kind == NodePoint && b.Kind == NodePlatform:
		return b.Dims.Contains(a.Offset)
	default:
		// Platform vs Point never holds (Point is only ever the smaller
		// side), and two distinct Point nodes are never comparable.
		return false
	}
}

// Edge is a directed edge of the DAG, from the contained node to its
// container (smaller to larger).
type Edge struct {
	From, To Node
}
