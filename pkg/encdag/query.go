package encdag

// ReducedEdges returns every edge of the transitive reduction R.
func (d *EncodingDag) ReducedEdges() []Edge {
	var out []Edge
	for i, succs := range d.reducedSucc {
		for _, j := range succs {
			out = append(out, Edge{From: d.nodes[i], To: d.nodes[j]})
		}
	}
	return out
}

// ReducedPlatformEdges returns R's edges between two Platform nodes, from
// strictly smaller to strictly larger footprint.
func (d *EncodingDag) ReducedPlatformEdges() []Edge {
	var out []Edge
	for _, e := range d.ReducedEdges() {
		if e.From.Kind == NodePlatform && e.To.Kind == NodePlatform {
			out = append(out, e)
		}
	}
	return out
}

// ReducedPointToPlatformEdges returns R's edges from an offset to its
// immediately enclosing footprint(s).
func (d *EncodingDag) ReducedPointToPlatformEdges() []Edge {
	var out []Edge
	for _, e := range d.ReducedEdges() {
		if e.From.Kind == NodePoint && e.To.Kind == NodePlatform {
			out = append(out, e)
		}
	}
	return out
}

// OutSetPlatformSuccessors returns n's immediate successors in R that are
// Platform nodes: the larger footprints n embeds directly into. Any two
// distinct results are pairwise incomparable under the partial order.
func (d *EncodingDag) OutSetPlatformSuccessors(n Node) []Node {
	i, ok := d.index[n]
	if !ok {
		return nil
	}
	var out []Node
	for _, j := range d.reducedSucc[i] {
		if d.nodes[j].Kind == NodePlatform {
			out = append(out, d.nodes[j])
		}
	}
	return out
}

// CommonPlatformSuccessors returns the Platform nodes reachable from both a
// and b in the transitive closure C.
func (d *EncodingDag) CommonPlatformSuccessors(a, b Node) []Node {
	ai, aok := d.index[a]
	bi, bok := d.index[b]
	if !aok || !bok {
		return nil
	}
	var out []Node
	for j, n := range d.nodes {
		if n.Kind != NodePlatform {
			continue
		}
		if d.reach[ai][j] && d.reach[bi][j] {
			out = append(out, n)
		}
	}
	return out
}

// MaximalFrom filters nodes, removing any node with a strict successor
// also present in nodes under C.
func (d *EncodingDag) MaximalFrom(nodes []Node) []Node {
	idxs := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if i, ok := d.index[n]; ok {
			idxs = append(idxs, i)
		}
	}
	var out []Node
	for _, i := range idxs {
		dominated := false
		for _, j := range idxs {
			if i == j {
				continue
			}
			if d.reach[i][j] {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, d.nodes[i])
		}
	}
	return out
}
