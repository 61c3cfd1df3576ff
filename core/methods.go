// Package core: mutation API.
//
// All mutations are synchronous and single-threaded. Each operation either
// succeeds or leaves the graph in its pre-call state; the only exception is
// the bulk-load duplication case documented in validation.go. Operations that
// change the edge set either recompute the calculated attributes immediately
// (the default, O(V+E)) or defer with the Deferred option and mark them stale
// so batched callers can amortize one recomputation across many mutations.

package core

import "errors"

// OpOption tunes a single mutation or projection call.
type OpOption func(*opConfig)

type opConfig struct {
	id          string
	replace     bool
	deferred    bool
	noAutoNodes bool
	partial     bool
}

func resolveOp(opts []OpOption) opConfig {
	var cfg opConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithID selects an explicit edge identifier for AddEdge, or the single
// parallel edge to remove for DelEdge. Without it AddEdge autogenerates an
// identifier and DelEdge removes the entire couple.
func WithID(id string) OpOption {
	return func(cfg *opConfig) { cfg.id = id }
}

// Replace lets AddNode and AddEdge overwrite an existing record instead of
// failing with ErrNodeAlreadyExists / ErrEdgeAlreadyExists. For nodes the
// calculated degree and neighbor set are preserved; ordinary attributes are
// overwritten, not merged.
func Replace() OpOption {
	return func(cfg *opConfig) { cfg.replace = true }
}

// Deferred skips the O(V+E) recomputation after an edge-set mutation and
// marks the calculated attributes stale instead. Use it when batching many
// mutations, then call Recalculate once.
func Deferred() OpOption {
	return func(cfg *opConfig) { cfg.deferred = true }
}

// NoAutoNodes suppresses the automatic creation of missing endpoint nodes by
// AddEdge.
func NoAutoNodes() OpOption {
	return func(cfg *opConfig) { cfg.noAutoNodes = true }
}

// PartialMatch makes Subgraph retain a couple when at least one endpoint is
// selected, instead of requiring both.
func PartialMatch() OpOption {
	return func(cfg *opConfig) { cfg.partial = true }
}

// AddNode inserts a node with the given identifier and attributes and returns
// the identifier. An empty id autogenerates one. If the node exists and
// Replace was not given, AddNode fails with ErrNodeAlreadyExists; with
// Replace the attribute record is overwritten while the calculated degree and
// neighbor set are kept.
//
// AddNode never triggers recomputation: inserting an isolated node cannot
// invalidate other nodes' calculated attributes, and its own start at zero.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, attrs Attrs, opts ...OpOption) (string, error) {
	cfg := resolveOp(opts)
	if id == "" {
		id = GenerateID()
	}
	if _, exists := g.nodes[id]; exists && !cfg.replace {
		return "", ErrNodeAlreadyExists
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	g.nodes[id] = attrs
	// Zero-valued calculated entries for a fresh node; existing entries are
	// preserved on replace.
	g.calc.ensure(id)

	return id, nil
}

// DelNode removes the node and cascades: every couple incident to the
// identifier, in either endpoint position, is deleted with all its parallel
// edges before the node itself. Returns ErrNodeNotFound for an absent node.
// Complexity: O(couples) for the cascade plus O(V+E) unless Deferred.
func (g *Graph) DelNode(id string, opts ...OpOption) error {
	cfg := resolveOp(opts)
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	for c := range g.edges {
		if c.L == id || c.R == id {
			delete(g.edges, c)
		}
	}
	delete(g.nodes, id)
	g.calc.drop(id)

	g.finish(cfg)

	return nil
}

// ClearNodes empties the node store only. It deliberately does not cascade to
// edges: the edge store may afterwards reference absent nodes until the
// caller reconciles (ClearEdges, SetEdges, or DelEdge). Recomputation skips
// such dangling endpoints.
func (g *Graph) ClearNodes() {
	g.nodes = make(map[string]Attrs)
	g.calc = newDerived()
	if len(g.edges) > 0 {
		g.calc.dirty = true
	}
}

// AddEdge inserts an edge between node l and node r and returns its
// identifier. The couple is canonicalized per variant, so on an undirected
// graph AddEdge(a, b) and AddEdge(b, a) address the same store entry.
//
// Without WithID an identifier is autogenerated. If the (couple, identifier)
// pair exists and Replace was not given, AddEdge fails with
// ErrEdgeAlreadyExists. Missing endpoint nodes are created with empty
// attributes unless NoAutoNodes is given; an endpoint that already exists is
// tolerated. Complexity: O(1) plus O(V+E) recomputation unless Deferred.
func (g *Graph) AddEdge(l, r string, attrs Attrs, opts ...OpOption) (string, error) {
	cfg := resolveOp(opts)
	c := g.orient.canonical(l, r)

	id := cfg.id
	if id == "" {
		id = GenerateID()
	}
	if multiples, ok := g.edges[c]; ok {
		if _, dup := multiples[id]; dup && !cfg.replace {
			return "", ErrEdgeAlreadyExists
		}
	} else {
		g.edges[c] = make(map[string]Attrs)
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	g.edges[c][id] = attrs

	if !cfg.noAutoNodes {
		if _, err := g.AddNode(l, nil); err != nil && !errors.Is(err, ErrNodeAlreadyExists) {
			return "", err
		}
		if _, err := g.AddNode(r, nil); err != nil && !errors.Is(err, ErrNodeAlreadyExists) {
			return "", err
		}
	}

	g.finish(cfg)

	return id, nil
}

// DelEdge removes edges between node l and node r. Without WithID the entire
// couple goes at once, all parallel edges included; with WithID exactly that
// edge identifier goes and the couple is pruned once its last parallel edge
// is gone. Returns ErrCoupleNotFound when no edges exist between the
// endpoints and ErrEdgeNotFound when the identifier is absent.
func (g *Graph) DelEdge(l, r string, opts ...OpOption) error {
	cfg := resolveOp(opts)
	c := g.orient.canonical(l, r)
	multiples, ok := g.edges[c]
	if !ok {
		return ErrCoupleNotFound
	}

	if cfg.id == "" {
		delete(g.edges, c)
	} else {
		if _, ok = multiples[cfg.id]; !ok {
			return ErrEdgeNotFound
		}
		delete(multiples, cfg.id)
		if len(multiples) == 0 {
			delete(g.edges, c)
		}
	}

	g.finish(cfg)

	return nil
}

// ClearEdges empties the edge store and forces degree 0 and an empty neighbor
// set on every node. Unlike ClearNodes this keeps the graph internally
// consistent, so the calculated attributes stay fresh.
func (g *Graph) ClearEdges() {
	g.edges = make(map[Couple]map[string]Attrs)
	g.ClearDegree()
	g.ClearNeighbors()
	g.calc.dirty = false
}

// finish applies the per-operation recomputation policy.
func (g *Graph) finish(cfg opConfig) {
	if cfg.deferred {
		g.calc.dirty = true

		return
	}
	g.Recalculate()
}
