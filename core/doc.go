// Package core provides an in-memory multigraph with attributed nodes and
// edges, automatic identifier generation, and derived structural metrics.
//
// The Graph G = (V,E) supports a rich mix of behaviors:
//
//   - Directed vs. undirected variants (NewDirected / NewUndirected), which
//     differ in exactly two rules: how an endpoint pair is canonicalized into
//     a Couple, and how neighbor sets are derived
//   - Parallel edges: every couple maps to {edge identifier: attributes}
//   - Loops: couples whose endpoints coincide (pseudographs)
//   - Arbitrary string-keyed attribute records on nodes and edges
//   - Calculated attributes — degree and neighbor sets — held apart from the
//     stores, with explicit, inspectable staleness (NeedsRecalc)
//   - Validated bulk loading with a closed, errors.Is-friendly taxonomy
//
// Data model:
//
//	nodes  map[identifier]Attrs
//	edges  map[Couple]map[identifier]Attrs
//
// On an undirected graph the couple (a,b) is ordered lexicographically, so
// (a,b) and (b,a) address the same store entry; on a directed graph order is
// direction. Identifiers are opaque strings; pass "" to have a 128-bit random
// token generated (GenerateID).
//
// Recomputation contract:
//
// Degree and neighbor sets are guaranteed accurate only immediately after
// construction or after an explicit Recalculate. Every edge-set mutation
// recomputes by default; the Deferred option skips the O(V+E) pass and marks
// the state stale so batched callers can amortize one recomputation across
// many mutations. Describe and Subgraph always recompute first.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(id, attrs, opts...) (id, error)  // O(1); "" autogenerates
//	DelNode(id, opts...) error               // cascades to incident couples
//	ClearNodes()                             // node store only (see quirk below)
//
//	// Edge lifecycle
//	AddEdge(l, r, attrs, opts...) (id, error) // couple canonicalized per variant
//	DelEdge(l, r, opts...) error              // whole couple, or WithID(one)
//	ClearEdges()                              // consistent: zeroes degrees too
//
//	// Bulk load
//	SetNodes(any) error                       // validated, replaces the store
//	SetEdges(any) error                       // validated, deferred recalc
//
//	// Calculated attributes
//	CalcDegree() / ClearDegree()
//	CalcNeighbors() / ClearNeighbors()
//	Recalculate()                             // both passes, clears staleness
//	NeedsRecalc() bool
//	Degree(id) (int, error)
//	Neighbors(id) ([]string, error)
//
//	// Projections & predicates
//	Subgraph(selected, opts...) *Graph        // edge-driven node retention
//	Describe() Description                    // forces recomputation
//	Loops() iter.Seq[Couple]                  // lazy, restartable, never cached
//	Equal(*Graph) bool
//
// ClearNodes quirk: ClearNodes empties the node store without cascading to
// edges, so the edge store may reference absent nodes afterwards. This
// mirrors the library's historical contract and is deliberate; recomputation
// and subgraph extraction skip dangling endpoints rather than repairing them.
//
// Concurrency: none. The engine is single-threaded with no internal locking;
// callers sharing a Graph across goroutines must synchronize externally. No
// operation performs I/O.
//
// Errors: see errors.go for the full sentinel taxonomy. Branch with
// errors.Is; DuplicationError additionally carries the offending couple.
package core
