// Package lvmaze generates perfect mazes over rectangular grids by randomized
// frontier growth, and returns them as plain lists of grid edges.
//
// 🚀 What is lvmaze?
//
//	A small, deterministic, dependency-light toolkit:
//		• Lattice primitives: bounds, neighbor order, row-major indexing, reachability
//		• Maze builder: biased frontier growth from cell (0,0)
//		• Verification: spanning-tree check with typed sentinel errors
//		• Export: literal edge listing and gonum graphs
//
// ✨ Why lvmaze?
//
//   - Reproducible – every random draw comes from an injected *rand.Rand
//   - Honest – the frontier's duplicate-entry bias is kept, not "fixed"
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under a few subpackages:
//
//	gridgraph/   — implicit 4-connected W×H lattice
//	maze/        — Build, Validate, Format/Listing, Graph
//	cmd/mazegen/ — command printing a 200×200 maze by default
//
// Quick ASCII example (2×2, one of four possible mazes):
//
//	(0,0)──(1,0)
//	          │
//	(0,1)──(1,1)
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
