// Package core: structural classification and read-only projections.

package core

import (
	"fmt"
	"iter"
	"reflect"
)

// Tri is a three-valued answer for structural predicates whose computation
// may be unavailable.
type Tri uint8

const (
	// TriFalse means the predicate holds false.
	TriFalse Tri = iota

	// TriTrue means the predicate holds true.
	TriTrue

	// TriNotAvailable means the predicate is not computed by this library.
	TriNotAvailable
)

// String renders the tri-state for diagnostics.
func (t Tri) String() string {
	switch t {
	case TriFalse:
		return "false"
	case TriTrue:
		return "true"
	default:
		return "not available"
	}
}

// Description is the structural summary returned by Describe.
type Description struct {
	// Type is the variant name, "Directed Graph" or "Undirected Graph".
	Type string

	// Nodes is the node count.
	Nodes int

	// Couples is the distinct-couple count, not counting parallel
	// multiplicity.
	Couples int

	// Multi reports whether any couple carries more than one parallel edge.
	Multi bool

	// Pseudo reports whether any loop couple exists.
	Pseudo bool

	// Complete reports whether the distinct non-loop couples reach the
	// simple-graph maximum n·(n−1)/2 for the current node count.
	Complete bool

	// Connected is always TriNotAvailable: connectivity is intentionally not
	// computed here and belongs to an algorithms layer built on the public
	// contract.
	Connected Tri
}

// Describe forces a recomputation pass, then returns the structural summary.
// Complexity: O(V+E).
func (g *Graph) Describe() Description {
	g.Recalculate()

	return Description{
		Type:      g.orient.kind().String(),
		Nodes:     len(g.nodes),
		Couples:   len(g.edges),
		Multi:     g.isMulti(),
		Pseudo:    g.isPseudo(),
		Complete:  g.isComplete(),
		Connected: TriNotAvailable,
	}
}

// isMulti reports whether any couple has more than one parallel edge.
func (g *Graph) isMulti() bool {
	for _, multiples := range g.edges {
		if len(multiples) > 1 {
			return true
		}
	}

	return false
}

// isPseudo reports whether any loop couple exists.
func (g *Graph) isPseudo() bool {
	for c := range g.edges {
		if c.Loop() {
			return true
		}
	}

	return false
}

// isComplete reports whether the count of distinct non-loop couples equals
// n·(n−1)/2. Couples are deduplicated order-independently regardless of
// variant: a directed graph with both X→Y and Y→X still counts the pair once.
func (g *Graph) isComplete() bool {
	distinct := make(map[Couple]struct{}, len(g.edges))
	for c := range g.edges {
		if c.Loop() {
			continue
		}
		l, r := c.L, c.R
		if r < l {
			l, r = r, l
		}
		distinct[Couple{L: l, R: r}] = struct{}{}
	}
	n := len(g.nodes)

	return len(distinct)*2 == n*(n-1)
}

// Loops returns a lazy, finite, restartable sequence of every loop couple.
// The sequence reads live edge state on each traversal and is never cached:
// ranging over it again after a mutation reflects the mutation.
func (g *Graph) Loops() iter.Seq[Couple] {
	return func(yield func(Couple) bool) {
		for c := range g.edges {
			if c.Loop() && !yield(c) {
				return
			}
		}
	}
}

// Equal reports whether both graphs are the same concrete variant with node
// and edge stores that are identifier-for-identifier and
// attribute-for-attribute identical. Calculated attributes do not
// participate: they are derived state.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || g.orient.kind() != other.orient.kind() {
		return false
	}

	return reflect.DeepEqual(g.nodes, other.nodes) &&
		reflect.DeepEqual(g.edges, other.edges)
}

// String renders the classification prefix chain (complete outermost, then
// pseudo, then multi) and the store sizes, e.g.
// "Pseudo Multi Directed Graph with 3 nodes and 2 edges". Edge count here is
// the distinct-couple count, matching Describe.
func (g *Graph) String() string {
	d := g.Describe()

	kind := d.Type
	if d.Multi {
		kind = "Multi " + kind
	}
	if d.Pseudo {
		kind = "Pseudo " + kind
	}
	if d.Complete {
		kind = "Complete " + kind
	}

	nodesWord := "node"
	if d.Nodes > 1 {
		nodesWord = "nodes"
	}
	edgesWord := "edge"
	if d.Couples > 1 {
		edgesWord = "edges"
	}

	return fmt.Sprintf("%s with %d %s and %d %s", kind, d.Nodes, nodesWord, d.Couples, edgesWord)
}
