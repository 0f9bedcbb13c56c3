// Package gridgraph treats a rectangular W×H lattice of cells as an implicit,
// 4-connected graph. Nothing is materialized: vertices are coordinate pairs and
// adjacency is derived from a fixed table of offsets.
//
// What:
//
//   - GridGraph describes the lattice bounds (Width, Height).
//   - Points are addressed either as (x,y) or by their row-major index y*Width+x.
//   - Neighbors enumerates the in-bounds orthogonal neighbors of a cell in a
//     stable order: east (+1,0), south (0,+1), west (-1,0), north (0,-1).
//   - Reachable runs a BFS over an arbitrary set of undirected links between
//     cells, e.g. the passages of a maze.
//
// Why:
//
//   - Maze generation: frontier growth only ever needs bounds checks and a
//     deterministic neighbor order.
//   - Verification: reachability over a link set tells whether a subgraph spans
//     the whole lattice.
//
// Complexity:
//
//   - New, InBounds, Index, Coordinate, Adjacent: O(1).
//   - Neighbors: O(4).
//   - Reachable: O(W×H + L), Memory: O(W×H + L) for L links.
//
// Errors:
//
//   - ErrInvalidDimension: width or height below 1.
package gridgraph
