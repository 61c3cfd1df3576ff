// Package core: calculated attributes.
//
// Degree and neighbor sets are derived from the authoritative edge store and
// live in a separate holder with an explicit staleness flag. The correctness
// invariant: calculated attributes are guaranteed accurate only immediately
// after construction or immediately after Recalculate; any intervening
// deferred mutation leaves them stale until recomputed. Staleness is a
// documented, caller-controlled state, inspectable via NeedsRecalc.

package core

import "sort"

// ClearDegree forces degree 0 on every node.
func (g *Graph) ClearDegree() {
	g.calc.degree = make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		g.calc.degree[id] = 0
	}
}

// CalcDegree recomputes every node's degree: the sum, over every couple
// incident to the node, of that couple's parallel-edge count. Both endpoint
// positions of every couple are incremented, so on a directed graph degree is
// in-degree and out-degree combined, and a loop couple counts twice.
// Endpoints missing from the node store (the ClearNodes quirk) are skipped.
// Complexity: O(V+E).
func (g *Graph) CalcDegree() {
	g.ClearDegree()
	for c, multiples := range g.edges {
		n := len(multiples)
		if _, ok := g.nodes[c.L]; ok {
			g.calc.degree[c.L] += n
		}
		if _, ok := g.nodes[c.R]; ok {
			g.calc.degree[c.R] += n
		}
	}
}

// ClearNeighbors forces an empty neighbor set on every node.
func (g *Graph) ClearNeighbors() {
	g.calc.neighbors = make(map[string]map[string]struct{}, len(g.nodes))
	for id := range g.nodes {
		g.calc.neighbors[id] = make(map[string]struct{})
	}
}

// CalcNeighbors recomputes every node's neighbor set per the variant rule:
// successor sets for a directed graph (right endpoints of couples where the
// node stands on the left), symmetric sets for an undirected one. Parallel
// edges do not multiply neighbors. Complexity: O(V+E).
func (g *Graph) CalcNeighbors() {
	g.ClearNeighbors()
	for c := range g.edges {
		g.orient.neighbors(c, func(of, neighbor string) {
			if set, ok := g.calc.neighbors[of]; ok {
				set[neighbor] = struct{}{}
			}
		})
	}
}

// Recalculate runs both calculated-attribute passes and clears the staleness
// flag. This is the official synchronization point after deferred mutations.
// Complexity: O(V+E).
func (g *Graph) Recalculate() {
	g.CalcDegree()
	g.CalcNeighbors()
	g.calc.dirty = false
}

// NeedsRecalc reports whether a deferred mutation has left the calculated
// attributes stale.
func (g *Graph) NeedsRecalc() bool { return g.calc.dirty }

// Degree returns the node's calculated degree as of the last recomputation
// pass. Returns ErrNodeNotFound for an absent node.
func (g *Graph) Degree(id string) (int, error) {
	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return g.calc.degree[id], nil
}

// Neighbors returns the node's calculated neighbor set as of the last
// recomputation pass, sorted for determinism. Returns ErrNodeNotFound for an
// absent node.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	set := g.calc.neighbors[id]
	out := make([]string, 0, len(set))
	for neighbor := range set {
		out = append(out, neighbor)
	}
	sort.Strings(out)

	return out, nil
}
