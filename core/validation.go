// Package core: bulk-input validation pipeline.
//
// Bulk node and edge input arrives untyped (typically straight from a decoded
// snapshot) and is normalized here before a single store mutation happens.
// Checks run fail-fast in a fixed order: outer-container type, element/key
// shape, element/key type, nested value type, nested cardinality. Each check
// phase runs across the whole collection before the next, so a key-family
// defect always surfaces before a value-family one; among several defects
// within one phase the surfaced element is unspecified. Duplicate
// edge identifiers are the one defect only discoverable mid-insertion; they
// surface as DuplicationError and can leave a partially populated graph — a
// documented non-atomicity, not a silently patched one.

package core

import "errors"

// edgeGroup is one pre-scanned bulk-edge entry: the couple exactly as
// supplied (not yet canonicalized) plus its multiples. Empty multiples mean
// "insert one autogenerated-identifier edge with no attributes".
type edgeGroup struct {
	couple    Couple
	multiples map[string]Attrs
}

// normalizeNodes validates bulk node input and returns the canonical
// identifier→attributes mapping. Sequence input yields empty attribute
// records. A nil input normalizes to an empty store.
func normalizeNodes(v any) (map[string]Attrs, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil

	case map[string]Attrs:
		out := make(map[string]Attrs, len(n))
		for id, attrs := range n {
			if attrs == nil {
				attrs = Attrs{}
			}
			out[id] = attrs
		}

		return out, nil

	case map[string]any:
		out := make(map[string]Attrs, len(n))
		for id, raw := range n {
			attrs, ok := attrsOf(raw)
			if !ok {
				return nil, ErrWrongTypeOfNodeAttributes
			}
			out[id] = attrs
		}

		return out, nil

	case map[any]any:
		// Each check runs across the whole collection before the next, so a
		// bad identifier anywhere surfaces before any bad attribute record.
		ids := make(map[any]string, len(n))
		for key := range n {
			id, ok := key.(string)
			if !ok {
				return nil, ErrWrongTypeOfNodeIdentifier
			}
			ids[key] = id
		}
		out := make(map[string]Attrs, len(n))
		for key, raw := range n {
			attrs, ok := attrsOf(raw)
			if !ok {
				return nil, ErrWrongTypeOfNodeAttributes
			}
			out[ids[key]] = attrs
		}

		return out, nil

	case []string:
		out := make(map[string]Attrs, len(n))
		for _, id := range n {
			out[id] = Attrs{}
		}

		return out, nil

	case []any:
		out := make(map[string]Attrs, len(n))
		for _, raw := range n {
			id, ok := raw.(string)
			if !ok {
				return nil, ErrWrongTypeOfNodeIdentifier
			}
			out[id] = Attrs{}
		}

		return out, nil

	default:
		return nil, ErrWrongTypeOfNodes
	}
}

// normalizeEdges validates bulk edge input and returns the pre-scanned edge
// groups. Sequence input yields one autogenerated edge per couple. A nil
// input normalizes to an empty store.
func normalizeEdges(v any) ([]edgeGroup, error) {
	switch e := v.(type) {
	case nil:
		return nil, nil

	case map[Couple]map[string]Attrs:
		out := make([]edgeGroup, 0, len(e))
		for c, raw := range e {
			multiples, err := multiplesOf(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, edgeGroup{couple: c, multiples: multiples})
		}

		return out, nil

	case map[Couple]any:
		out := make([]edgeGroup, 0, len(e))
		for c, raw := range e {
			multiples, err := multiplesOf(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, edgeGroup{couple: c, multiples: multiples})
		}

		return out, nil

	case map[any]any:
		// Couple checks run across the whole collection before any multiples
		// check, matching the per-phase ordering of the node pipeline.
		couples := make(map[any]Couple, len(e))
		for key := range e {
			c, err := coupleOf(key)
			if err != nil {
				return nil, err
			}
			couples[key] = c
		}
		out := make([]edgeGroup, 0, len(e))
		for key, raw := range e {
			multiples, err := multiplesOf(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, edgeGroup{couple: couples[key], multiples: multiples})
		}

		return out, nil

	case []Couple:
		out := make([]edgeGroup, 0, len(e))
		for _, c := range e {
			out = append(out, edgeGroup{couple: c})
		}

		return out, nil

	case [][2]string:
		out := make([]edgeGroup, 0, len(e))
		for _, pair := range e {
			out = append(out, edgeGroup{couple: Couple{L: pair[0], R: pair[1]}})
		}

		return out, nil

	case []any:
		out := make([]edgeGroup, 0, len(e))
		for _, raw := range e {
			c, err := coupleOf(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, edgeGroup{couple: c})
		}

		return out, nil

	default:
		return nil, ErrWrongTypeOfEdges
	}
}

// coupleOf coerces one untyped couple. Checks, in order: pair shape, pair
// length, endpoint identifier type.
func coupleOf(v any) (Couple, error) {
	switch c := v.(type) {
	case Couple:
		return c, nil

	case [2]string:
		return Couple{L: c[0], R: c[1]}, nil

	case []string:
		if len(c) != 2 {
			return Couple{}, ErrWrongLengthOfCouple
		}

		return Couple{L: c[0], R: c[1]}, nil

	case [2]any:
		return coupleOfPair(c[0], c[1])

	case []any:
		if len(c) != 2 {
			return Couple{}, ErrWrongLengthOfCouple
		}

		return coupleOfPair(c[0], c[1])

	default:
		return Couple{}, ErrWrongTypeOfCouple
	}
}

func coupleOfPair(l, r any) (Couple, error) {
	ls, ok := l.(string)
	if !ok {
		return Couple{}, ErrWrongTypeOfNodeIdentifierInCouple
	}
	rs, ok := r.(string)
	if !ok {
		return Couple{}, ErrWrongTypeOfNodeIdentifierInCouple
	}

	return Couple{L: ls, R: rs}, nil
}

// multiplesOf coerces one untyped multiples value. A null value violates the
// cardinality contract (ErrWrongLengthOfMultipleEdges); an empty mapping is
// admissible and later yields one autogenerated edge.
func multiplesOf(v any) (map[string]Attrs, error) {
	switch m := v.(type) {
	case nil:
		return nil, ErrWrongLengthOfMultipleEdges

	case map[string]Attrs:
		out := make(map[string]Attrs, len(m))
		for id, attrs := range m {
			if attrs == nil {
				attrs = Attrs{}
			}
			out[id] = attrs
		}

		return out, nil

	case Attrs:
		return multiplesOfStringMap(m)

	case map[string]any:
		return multiplesOfStringMap(m)

	case map[any]any:
		out := make(map[string]Attrs, len(m))
		for key, raw := range m {
			id, ok := key.(string)
			if !ok {
				return nil, ErrWrongTypeOfEdgeIdentifier
			}
			attrs, ok := attrsOf(raw)
			if !ok {
				return nil, ErrWrongTypeOfEdgeAttributes
			}
			out[id] = attrs
		}

		return out, nil

	default:
		return nil, ErrWrongTypeOfMultipleEdges
	}
}

func multiplesOfStringMap(m map[string]any) (map[string]Attrs, error) {
	out := make(map[string]Attrs, len(m))
	for id, raw := range m {
		attrs, ok := attrsOf(raw)
		if !ok {
			return nil, ErrWrongTypeOfEdgeAttributes
		}
		out[id] = attrs
	}

	return out, nil
}

// attrsOf coerces one untyped attribute record; nil and non-mapping values
// are rejected.
func attrsOf(v any) (Attrs, bool) {
	switch a := v.(type) {
	case Attrs:
		if a == nil {
			return nil, false
		}

		return a, true

	case map[string]any:
		if a == nil {
			return nil, false
		}

		return Attrs(a), true

	case map[any]any:
		out := make(Attrs, len(a))
		for key, val := range a {
			k, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[k] = val
		}

		return out, true

	default:
		return nil, false
	}
}

// SetNodes validates nodes and replaces the whole node store with the result.
// Validation is a pre-scan: on failure the graph is left untouched. Replacing
// the store leaves any existing edges in place (see ClearNodes for the same
// quirk), so calculated attributes are marked stale when edges exist.
func (g *Graph) SetNodes(nodes any) error {
	normalized, err := normalizeNodes(nodes)
	if err != nil {
		return err
	}

	g.nodes = make(map[string]Attrs, len(normalized))
	g.calc = newDerived()
	for id, attrs := range normalized {
		g.nodes[id] = attrs
		g.calc.ensure(id)
	}
	if len(g.edges) > 0 {
		g.calc.dirty = true
	}

	return nil
}

// SetEdges validates edges and replaces the whole edge store with the result,
// deferring recomputation. Shape and type defects abort before any mutation;
// a duplicate edge identifier for one canonical couple aborts mid-insertion
// with DuplicationError and leaves the partial load in place.
func (g *Graph) SetEdges(edges any) error {
	groups, err := normalizeEdges(edges)
	if err != nil {
		return err
	}

	g.edges = make(map[Couple]map[string]Attrs, len(groups))
	g.calc.dirty = true
	for _, grp := range groups {
		if len(grp.multiples) == 0 {
			// One autogenerated edge, no attributes.
			if _, err = g.AddEdge(grp.couple.L, grp.couple.R, nil, Deferred()); err != nil {
				return err
			}
			continue
		}
		for id, attrs := range grp.multiples {
			if _, err = g.AddEdge(grp.couple.L, grp.couple.R, attrs, WithID(id), Deferred()); err != nil {
				if errors.Is(err, ErrEdgeAlreadyExists) {
					return &DuplicationError{Couple: grp.couple}
				}

				return err
			}
		}
	}

	return nil
}
