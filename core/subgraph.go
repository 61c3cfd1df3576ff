// Package core: subgraph extraction.

package core

// Subgraph returns a new graph of the same variant induced by the selected
// node identifiers. A couple (with all its parallel edges) is retained iff
// both endpoints are selected, or at least one with the PartialMatch option.
// Node retention is edge-driven, not selection-driven: every node touched by
// a retained couple is copied into the result, while a selected node with no
// retained incident couple is left out entirely.
//
// Attribute records are copied, not shared, so mutating the source graph's
// attributes afterwards does not leak into the subgraph. Calculated
// attributes of the result are freshly recomputed. The source graph is not
// mutated. Complexity: O(V+E).
func (g *Graph) Subgraph(selected []string, opts ...OpOption) *Graph {
	cfg := resolveOp(opts)

	// Intersect the selection with the node store.
	keep := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		if _, ok := g.nodes[id]; ok {
			keep[id] = struct{}{}
		}
	}

	sub := g.emptyLike()
	for c, multiples := range g.edges {
		_, inL := keep[c.L]
		_, inR := keep[c.R]
		retained := inL && inR
		if cfg.partial {
			retained = inL || inR
		}
		if !retained {
			continue
		}

		for id, attrs := range multiples {
			// NoAutoNodes: endpoint records are copied below with their real
			// attributes, not synthesized empty.
			_, _ = sub.AddEdge(c.L, c.R, cloneAttrs(attrs), WithID(id), NoAutoNodes(), Deferred())
		}
		sub.copyNodeFrom(g, c.L)
		sub.copyNodeFrom(g, c.R)
	}
	sub.Recalculate()

	return sub
}

// copyNodeFrom copies one node's attribute record from src, once. Endpoints
// absent from src's node store (the ClearNodes quirk) are skipped.
func (g *Graph) copyNodeFrom(src *Graph, id string) {
	if _, done := g.nodes[id]; done {
		return
	}
	attrs, ok := src.nodes[id]
	if !ok {
		return
	}
	_, _ = g.AddNode(id, cloneAttrs(attrs))
}

// cloneAttrs shallow-copies an attribute record: the record itself is fresh,
// attribute values are shared.
func cloneAttrs(attrs Attrs) Attrs {
	out := make(Attrs, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}

	return out
}
