// Package maze generates perfect mazes (spanning trees of a rectangular
// lattice) by randomized frontier growth.
//
// 🚀 What:
//
//	Build(width, height) grows a tree from cell (0,0). At every step it picks
//	one candidate edge uniformly at random from the frontier list, marks the
//	new cell visited, drops every frontier entry that points at that cell, and
//	appends edges towards the new cell's unvisited neighbors. The result is the
//	ordered list of accepted edges: exactly width*height-1 of them.
//
// ⚖️ Bias:
//
//	The frontier is a list, not a set. A cell bordering several visited cells
//	appears once per bordering edge and is proportionally more likely to be
//	picked. This is NOT a uniform spanning tree; the bias is part of the
//	contract and is preserved exactly.
//
// 🎲 Determinism:
//
//	The generator is injected through WithRand or WithSeed. With no option the
//	stream is seeded with DefaultSeed, so identical calls yield identical
//	mazes. A *rand.Rand must not be shared across goroutines.
//
// Complexity:
//
//   - Build:    O((W·H)·F) time, F = frontier length (≤ O(W·H)); O(W·H) memory.
//   - Validate: O(W·H + E·α(W·H)).
//   - Format:   O(E).
//
// Errors:
//
//   - ErrInvalidDimension: width or height below 1.
//   - ErrOutOfBounds, ErrNotAdjacent, ErrDuplicateEdge, ErrCycle, ErrNotSpanning:
//     Validate and Graph rejections.
//
// Quick ASCII example (3×2, one possible tree):
//
//	(0,0)──(1,0)──(2,0)
//	  │             │
//	(0,1)  (1,1)──(2,1)
//
//	[((0, 0), (1, 0)), ((0, 0), (0, 1)), ((1, 0), (2, 0)), ((2, 0), (2, 1)), ((2, 1), (1, 1))]
package maze
