// Package gridgraph defines the core lattice types for the gridgraph
// subpackage of github.com/katalvlaran/lvmaze.
package gridgraph

import "fmt"

// minDim is the smallest admissible lattice side.
const minDim = 1

// Point identifies a single lattice cell. It is a plain value: comparable with
// ==, usable as a map key, never mutated in place.
type Point struct {
	X, Y int
}

// String renders the point as a literal coordinate tuple "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// offsets4 lists orthogonal neighbor deltas in enumeration order:
// east, south, west, north.
var offsets4 = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// GridGraph is an implicit W×H lattice with 4-directional adjacency.
// It is immutable once built and safe for concurrent reads.
type GridGraph struct {
	Width, Height int
}
