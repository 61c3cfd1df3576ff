// Package snapshot transcodes a whole graph — variant, node store, edge
// store — to and from JSON and YAML.
//
// The wire document:
//
//	variant: directed | undirected
//	nodes:
//	  <identifier>: {<attribute>: <value>, ...}
//	edges:
//	  - couple: [<left>, <right>]
//	    multiples:
//	      <edge identifier>: {<attribute>: <value>, ...}
//
// Decoding hands the untyped node mapping and the couple-keyed edge mapping
// straight to the core validation pipeline, so a malformed file surfaces the
// same error taxonomy as any other bulk load (core.ErrWrongTypeOfNodeAttributes,
// core.ErrWrongTypeOfMultipleEdges, ...), not codec-private conditions.
//
// Round-trip: Load(Save(g)) is Equal to g for any graph whose attribute
// values survive the codec. JSON in particular normalizes all numbers to
// float64; callers storing ints should account for that.
//
// The codec is an external collaborator of the core: it never touches graph
// internals, only the public read-only views and constructors.
package snapshot
