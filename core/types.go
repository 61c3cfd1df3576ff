// Package core defines the central Graph and Couple types and the
// single-threaded primitives for building, mutating, and classifying
// attributed multigraphs.
//
// This file declares Attrs, Couple, Kind, the orientation capability
// interface with its directed/undirected implementations, the derived
// (calculated-attribute) state holder, and the Graph constructors.
package core

// Attrs stores arbitrary string-keyed attributes of a node or an edge.
// Attribute values are opaque to the engine; they are never interpreted,
// only stored, copied on projection, and compared on equality.
type Attrs map[string]any

// Couple is the canonical representation of an edge's two endpoint
// identifiers and the key of the edge store. For a directed graph the pair
// is kept as given (order = direction); for an undirected graph (a,b) and
// (b,a) always map to the same Couple.
type Couple struct {
	// L is the left endpoint identifier.
	L string

	// R is the right endpoint identifier.
	R string
}

// Loop reports whether both endpoints of the couple are the same node.
func (c Couple) Loop() bool { return c.L == c.R }

// Kind discriminates the two concrete graph variants.
type Kind uint8

const (
	// Directed keeps couples as given; neighbor sets are successor sets.
	Directed Kind = iota

	// Undirected canonicalizes couples order-independently; neighbor sets
	// are symmetric.
	Undirected
)

// String returns the human-readable variant name used by Describe.
func (k Kind) String() string {
	if k == Directed {
		return "Directed Graph"
	}

	return "Undirected Graph"
}

// orientation supplies the only two rules that distinguish the directed and
// undirected variants: couple canonicalization and neighbor derivation.
// Everything else in the engine is shared.
type orientation interface {
	// kind identifies the concrete variant.
	kind() Kind

	// canonical maps an ordered endpoint pair to its edge-store key.
	canonical(l, r string) Couple

	// neighbors reports every (node, neighbor) relation induced by one
	// couple via the add callback.
	neighbors(c Couple, add func(of, neighbor string))
}

// directedOrientation keeps couples as given and derives successor sets only.
type directedOrientation struct{}

func (directedOrientation) kind() Kind { return Directed }

func (directedOrientation) canonical(l, r string) Couple { return Couple{L: l, R: r} }

func (directedOrientation) neighbors(c Couple, add func(of, neighbor string)) {
	// Successor set only: the right endpoint of every couple where the node
	// stands on the left. Not symmetric.
	add(c.L, c.R)
}

// undirectedOrientation orders endpoints lexicographically so that (a,b) and
// (b,a) share one store key, and derives symmetric neighbor sets.
type undirectedOrientation struct{}

func (undirectedOrientation) kind() Kind { return Undirected }

func (undirectedOrientation) canonical(l, r string) Couple {
	if r < l {
		l, r = r, l
	}

	return Couple{L: l, R: r}
}

func (undirectedOrientation) neighbors(c Couple, add func(of, neighbor string)) {
	add(c.L, c.R)
	if !c.Loop() {
		add(c.R, c.L)
	}
}

// derived holds the two calculated node attributes separately from the
// authoritative stores, together with an explicit staleness flag.
// "Needs recomputation" is a typed, inspectable state: any deferred mutation
// sets dirty, and only Recalculate clears it.
type derived struct {
	degree    map[string]int
	neighbors map[string]map[string]struct{}
	dirty     bool
}

func newDerived() derived {
	return derived{
		degree:    make(map[string]int),
		neighbors: make(map[string]map[string]struct{}),
	}
}

// ensure registers a node in both calculated maps with zero values,
// preserving any values already present (replace semantics).
func (d *derived) ensure(id string) {
	if _, ok := d.degree[id]; !ok {
		d.degree[id] = 0
	}
	if _, ok := d.neighbors[id]; !ok {
		d.neighbors[id] = make(map[string]struct{})
	}
}

// drop forgets a node's calculated entries entirely.
func (d *derived) drop(id string) {
	delete(d.degree, id)
	delete(d.neighbors, id)
}

// Graph is the in-memory multigraph: exactly one node store, one edge store,
// one derived-state holder, and the orientation that fixes its variant.
//
// The engine is single-threaded and performs no internal locking; callers
// sharing a Graph across goroutines must provide external synchronization.
// The stores are never exposed for direct deletion — use ClearNodes or
// ClearEdges.
type Graph struct {
	orient orientation

	// nodes maps node identifier → attribute record.
	nodes map[string]Attrs

	// edges maps canonical couple → edge identifier → attribute record.
	edges map[Couple]map[string]Attrs

	// calc carries the calculated attributes (degree, neighbor sets) and the
	// staleness flag.
	calc derived
}

// GraphOption configures construction-time bulk input.
type GraphOption func(*graphConfig)

type graphConfig struct {
	nodes any
	edges any
}

// WithNodes supplies bulk node input. Admissible shapes: a mapping from
// identifier to attribute record (map[string]Attrs or map[string]any with
// attribute-record values), or a sequence of identifiers ([]string or []any
// of strings). Anything else fails validation.
func WithNodes(nodes any) GraphOption {
	return func(cfg *graphConfig) { cfg.nodes = nodes }
}

// WithEdges supplies bulk edge input. Admissible shapes: a mapping from
// couple to {edge identifier: attributes} (an empty inner mapping inserts one
// autogenerated-identifier edge with no attributes), or a sequence of couples
// (each becomes one autogenerated-identifier edge). A couple in untyped form
// is a two-element sequence of strings.
func WithEdges(edges any) GraphOption {
	return func(cfg *graphConfig) { cfg.edges = edges }
}

// NewDirected creates a directed multigraph, validating and bulk-loading any
// supplied nodes and edges, then performing one degree/neighbor pass.
// Complexity: O(V+E).
func NewDirected(opts ...GraphOption) (*Graph, error) {
	return newGraph(directedOrientation{}, opts)
}

// NewUndirected creates an undirected multigraph, validating and bulk-loading
// any supplied nodes and edges, then performing one degree/neighbor pass.
// Complexity: O(V+E).
func NewUndirected(opts ...GraphOption) (*Graph, error) {
	return newGraph(undirectedOrientation{}, opts)
}

func newGraph(o orientation, opts []GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		orient: o,
		nodes:  make(map[string]Attrs),
		edges:  make(map[Couple]map[string]Attrs),
		calc:   newDerived(),
	}
	if err := g.SetNodes(cfg.nodes); err != nil {
		return nil, err
	}
	if err := g.SetEdges(cfg.edges); err != nil {
		return nil, err
	}
	// One recomputation pass after deferred bulk load.
	g.Recalculate()

	return g, nil
}

// emptyLike returns a fresh empty graph of the same variant.
func (g *Graph) emptyLike() *Graph {
	return &Graph{
		orient: g.orient,
		nodes:  make(map[string]Attrs),
		edges:  make(map[Couple]map[string]Attrs),
		calc:   newDerived(),
	}
}

// Kind reports the concrete variant of the graph.
func (g *Graph) Kind() Kind { return g.orient.kind() }

// Directed reports whether the graph is the directed variant.
func (g *Graph) Directed() bool { return g.orient.kind() == Directed }
