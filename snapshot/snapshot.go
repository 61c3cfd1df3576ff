package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/connections/core"
)

// Format selects the wire encoding.
type Format uint8

const (
	// JSON encodes via encoding/json with two-space indentation.
	JSON Format = iota

	// YAML encodes via gopkg.in/yaml.v3.
	YAML
)

// Sentinel errors for the snapshot codec.
var (
	// ErrUnsupportedExtension indicates a path whose extension maps to no
	// known format. Supported: .json, .yaml, .yml.
	ErrUnsupportedExtension = errors.New("snapshot: unsupported file extension")

	// ErrUnknownFormat indicates a Format value outside the declared constants.
	ErrUnknownFormat = errors.New("snapshot: unknown format")

	// ErrUnknownVariant indicates a document whose variant field is neither
	// "directed" nor "undirected".
	ErrUnknownVariant = errors.New("snapshot: unknown graph variant")
)

const (
	variantDirected   = "directed"
	variantUndirected = "undirected"
)

// document is the wire representation of {variant, nodes, edges}.
// Nodes and multiples stay untyped on the way in so that the core validation
// pipeline, not the codec, judges their shape.
type document struct {
	Variant string         `json:"variant" yaml:"variant"`
	Nodes   map[string]any `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges   []edgeGroup    `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// edgeGroup is one couple with its parallel edges.
type edgeGroup struct {
	Couple    []string `json:"couple" yaml:"couple,flow"`
	Multiples any      `json:"multiples,omitempty" yaml:"multiples,omitempty"`
}

// Encode writes the graph to w in the given format. Output is deterministic:
// nodes and couples are emitted in sorted order.
func Encode(g *core.Graph, w io.Writer, format Format) error {
	doc := encodeDocument(g)
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	default:
		return ErrUnknownFormat
	}
}

// Decode reads one document from r and reconstructs the graph through the
// core constructors, running the full bulk-load validation pipeline.
func Decode(r io.Reader, format Format) (*core.Graph, error) {
	var doc document
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("snapshot: decode: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("snapshot: decode: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	edges, err := decodeEdges(doc.Edges)
	if err != nil {
		return nil, err
	}

	opts := []core.GraphOption{core.WithNodes(doc.Nodes), core.WithEdges(edges)}
	switch doc.Variant {
	case variantDirected:
		return core.NewDirected(opts...)
	case variantUndirected:
		return core.NewUndirected(opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, doc.Variant)
	}
}

// Save writes the graph to path, choosing the format from the extension.
func Save(g *core.Graph, path string) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	if err = Encode(g, file, format); err != nil {
		_ = file.Close()

		return err
	}

	return file.Close()
}

// Load reads a graph from path, choosing the format from the extension.
func Load(path string) (*core.Graph, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load: %w", err)
	}
	defer file.Close()

	return Decode(file, format)
}

func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

// encodeDocument projects the graph onto the wire document through the public
// read-only views.
func encodeDocument(g *core.Graph) document {
	doc := document{Variant: variantUndirected}
	if g.Directed() {
		doc.Variant = variantDirected
	}

	ids := g.NodeIDs()
	if len(ids) > 0 {
		doc.Nodes = make(map[string]any, len(ids))
		for _, id := range ids {
			attrs, _ := g.NodeAttrs(id)
			doc.Nodes[id] = attrs
		}
	}

	for _, c := range g.Couples() {
		multiples, _ := g.EdgesOf(c.L, c.R)
		doc.Edges = append(doc.Edges, edgeGroup{
			Couple:    []string{c.L, c.R},
			Multiples: multiples,
		})
	}

	return doc
}

// decodeEdges converts the edge list into the couple-keyed mapping the core
// validation pipeline admits. A couple repeated in the list has its multiples
// merged; a colliding edge identifier across repetitions is the same
// duplication condition a bulk load would report.
func decodeEdges(groups []edgeGroup) (map[core.Couple]any, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	edges := make(map[core.Couple]any, len(groups))
	for _, grp := range groups {
		if len(grp.Couple) != 2 {
			return nil, fmt.Errorf("snapshot: couple %v: %w", grp.Couple, core.ErrWrongLengthOfCouple)
		}
		c := core.Couple{L: grp.Couple[0], R: grp.Couple[1]}

		existing, ok := edges[c]
		if !ok {
			edges[c] = grp.Multiples
			continue
		}

		merged, err := mergeMultiples(c, existing, grp.Multiples)
		if err != nil {
			return nil, err
		}
		edges[c] = merged
	}

	return edges, nil
}

func mergeMultiples(c core.Couple, a, b any) (map[string]any, error) {
	am, aok := a.(map[string]any)
	bm, bok := b.(map[string]any)
	if !aok || !bok {
		return nil, fmt.Errorf("snapshot: couple (%s,%s): %w", c.L, c.R, core.ErrWrongTypeOfMultipleEdges)
	}
	out := make(map[string]any, len(am)+len(bm))
	for id, attrs := range am {
		out[id] = attrs
	}
	for id, attrs := range bm {
		if _, dup := out[id]; dup {
			return nil, &core.DuplicationError{Couple: c}
		}
		out[id] = attrs
	}

	return out, nil
}
