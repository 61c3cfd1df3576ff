// Package connections is an in-memory library for building and mutating
// directed and undirected multigraphs with attributed nodes and edges.
//
// 🚀 What is connections?
//
//	A small, dependency-light library that brings together:
//		• Attributed nodes and edges: arbitrary key-value records on both
//		• Multi-edges: any number of parallel edges per endpoint couple
//		• Loops: self-referencing couples (pseudographs)
//		• Calculated attributes: degree and neighbor sets, recomputed on demand
//		• Subgraph extraction: full-match or partial-match node selections
//		• Structural classification: multigraph / pseudograph / complete detection
//		• Snapshots: JSON and YAML import/export that round-trips a whole graph
//
// ✨ Why choose connections?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest staleness – deferred recomputation is a typed, inspectable state
//   - Pure Go – no cgo, no network, no hidden machinery
//   - Validated input – bulk loads are shape-checked before a single mutation
//
// Everything is organized under two subpackages:
//
//	core/     — Graph, Couple, attribute stores, validation and mutation API
//	snapshot/ — JSON/YAML transcoding of {variant, nodes, edges}
//
// Quick ASCII example:
//
//	    X ══▶ Y ──▶ Z
//
//	two parallel edges X→Y and one edge Y→Z: a directed multigraph.
//
// Dive into core/doc.go for the data model and the recomputation contract.
//
//	go get github.com/katalvlaran/connections
package connections
