// SPDX-License-Identifier: MIT
// File: view.go
// Role: Read-only views over the node and edge stores.
//
// The stores are exposed only as copies: no accessor hands out a reference
// through which the whole store could be deleted or mutated behind the
// engine's back. Emptying a store goes through ClearNodes / ClearEdges.

package core

import "sort"

// HasNode reports whether a node with the given identifier exists. O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// NodeAttrs returns a copy of the node's attribute record, or ErrNodeNotFound.
func (g *Graph) NodeAttrs(id string) (Attrs, error) {
	attrs, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return cloneAttrs(attrs), nil
}

// NodeIDs returns every node identifier in sorted order. O(V log V).
func (g *Graph) NodeIDs() []string {
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// HasEdge reports whether at least one edge exists between l and r, keyed by
// the variant's canonical couple. O(1).
func (g *Graph) HasEdge(l, r string) bool {
	multiples, ok := g.edges[g.orient.canonical(l, r)]

	return ok && len(multiples) > 0
}

// EdgesOf returns a copy of the multiples stored for the couple (l, r):
// edge identifier → attribute record. Returns ErrCoupleNotFound when no
// edges exist between the endpoints.
func (g *Graph) EdgesOf(l, r string) (map[string]Attrs, error) {
	multiples, ok := g.edges[g.orient.canonical(l, r)]
	if !ok {
		return nil, ErrCoupleNotFound
	}
	out := make(map[string]Attrs, len(multiples))
	for id, attrs := range multiples {
		out[id] = cloneAttrs(attrs)
	}

	return out, nil
}

// Couples returns every distinct couple sorted by left then right endpoint.
// O(E log E).
func (g *Graph) Couples() []Couple {
	out := make([]Couple, 0, len(g.edges))
	for c := range g.edges {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].L != out[j].L {
			return out[i].L < out[j].L
		}

		return out[i].R < out[j].R
	})

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// CoupleCount returns the number of distinct couples, not counting parallel
// multiplicity. O(1).
func (g *Graph) CoupleCount() int { return len(g.edges) }

// EdgeCount returns the total number of edges, parallel edges included. O(E).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, multiples := range g.edges {
		total += len(multiples)
	}

	return total
}
