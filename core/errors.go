// SPDX-License-Identifier: MIT
// Package: connections/core
//
// errors.go — sentinel errors for the core package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Structured context (the offending couple) travels on typed errors such
//     as DuplicationError, not inside pre-rendered messages.

package core

import (
	"errors"
	"fmt"
)

// Nodes validation family: shape and type checks on bulk node input.
// Checks run fail-fast in a fixed order before any store mutation.
var (
	// ErrWrongTypeOfNodes indicates bulk node input that is neither a mapping
	// from identifier to attributes nor a sequence of identifiers.
	ErrWrongTypeOfNodes = errors.New("core: wrong type of nodes: must be a mapping or a sequence")

	// ErrWrongTypeOfNodeIdentifier indicates a node identifier that is not a string.
	ErrWrongTypeOfNodeIdentifier = errors.New("core: wrong type of node identifier: must be a string")

	// ErrWrongTypeOfNodeAttributes indicates a node attribute record that is
	// not a string-keyed mapping.
	ErrWrongTypeOfNodeAttributes = errors.New("core: wrong type of node attributes: must be a mapping")
)

// Edges validation family: shape and type checks on bulk edge input.
var (
	// ErrWrongTypeOfEdges indicates bulk edge input that is neither a mapping
	// from couple to multiples nor a sequence of couples.
	ErrWrongTypeOfEdges = errors.New("core: wrong type of edges: must be a mapping or a sequence")

	// ErrWrongTypeOfCouple indicates a couple that is not a two-endpoint pair.
	ErrWrongTypeOfCouple = errors.New("core: wrong type of couple: must be a pair of identifiers")

	// ErrWrongLengthOfCouple indicates a couple whose length is not exactly 2.
	ErrWrongLengthOfCouple = errors.New("core: wrong length of couple: must be exactly 2")

	// ErrWrongTypeOfNodeIdentifierInCouple indicates a couple endpoint that is
	// not a string.
	ErrWrongTypeOfNodeIdentifierInCouple = errors.New("core: wrong type of node identifier in couple: must be a string")

	// ErrWrongTypeOfMultipleEdges indicates a multiples value that is not a
	// mapping from edge identifier to attributes.
	ErrWrongTypeOfMultipleEdges = errors.New("core: wrong type of multiple edges: must be a mapping")

	// ErrWrongLengthOfMultipleEdges indicates an absent (null) multiples value.
	// An empty mapping is admissible and inserts one autogenerated-identifier
	// edge; null is not.
	ErrWrongLengthOfMultipleEdges = errors.New("core: wrong length of multiple edges: must be present")

	// ErrWrongTypeOfEdgeIdentifier indicates an edge identifier that is not a string.
	ErrWrongTypeOfEdgeIdentifier = errors.New("core: wrong type of edge identifier: must be a string")

	// ErrWrongTypeOfEdgeAttributes indicates an edge attribute record that is
	// not a string-keyed mapping.
	ErrWrongTypeOfEdgeAttributes = errors.New("core: wrong type of edge attributes: must be a mapping")

	// ErrDuplicationInEdgeIdentifiers indicates the same edge identifier was
	// supplied twice for one canonical couple during bulk load. Unlike the
	// shape checks above, this is only discoverable mid-insertion and can
	// leave a partially populated graph behind. See DuplicationError.
	ErrDuplicationInEdgeIdentifiers = errors.New("core: duplication in edge identifiers")
)

// Existence family: incremental mutation conflicts and misses.
var (
	// ErrNodeAlreadyExists indicates AddNode hit an existing identifier
	// without the Replace option.
	ErrNodeAlreadyExists = errors.New("core: node already exists")

	// ErrEdgeAlreadyExists indicates AddEdge hit an existing (couple,
	// identifier) pair without the Replace option.
	ErrEdgeAlreadyExists = errors.New("core: edge already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrCoupleNotFound indicates an operation referenced a couple with no
	// stored edges.
	ErrCoupleNotFound = errors.New("core: couple not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge
	// identifier within an existing couple.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// DuplicationError reports a duplicate edge identifier discovered while bulk
// loading, carrying the offending couple as structured context. It matches
// both ErrDuplicationInEdgeIdentifiers and the ErrEdgeAlreadyExists condition
// it wraps via errors.Is.
type DuplicationError struct {
	// Couple names the endpoints whose multiples contained the duplicate.
	Couple Couple
}

// Error renders the couple into the message; branch with errors.Is, not on text.
func (e *DuplicationError) Error() string {
	return fmt.Sprintf(
		"core: duplication in edge identifiers incident to nodes %q and %q",
		e.Couple.L, e.Couple.R)
}

// Is lets errors.Is treat a DuplicationError as both the duplication-specific
// condition and the incremental already-exists condition it wraps.
func (e *DuplicationError) Is(target error) bool {
	return target == ErrDuplicationInEdgeIdentifiers || target == ErrEdgeAlreadyExists
}
