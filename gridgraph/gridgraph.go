package gridgraph

import (
	"fmt"
	"math"
)

// New constructs a GridGraph of the given dimensions.
// Returns ErrInvalidDimension (wrapped with the offending sizes) if either side
// is below 1 or Width×Height does not fit in an int.
// Complexity: O(1).
func New(width, height int) (*GridGraph, error) {
	if width < minDim || height < minDim {
		return nil, fmt.Errorf("gridgraph: width=%d, height=%d: %w", width, height, ErrInvalidDimension)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("gridgraph: width=%d, height=%d: cell count overflows int: %w", width, height, ErrInvalidDimension)
	}

	return &GridGraph{Width: width, Height: height}, nil
}

// Size returns the number of cells, Width×Height.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether p lies within the grid boundaries.
func (gg *GridGraph) Contains(p Point) bool {
	return gg.InBounds(p.X, p.Y)
}

// NeighborOffsets returns the orthogonal neighbor deltas in enumeration order.
// The returned array is a copy.
func (gg *GridGraph) NeighborOffsets() [4][2]int {
	return offsets4
}

// Neighbors returns the in-bounds orthogonal neighbors of p, in the order
// east, south, west, north. Out-of-range p yields whatever neighbors happen to
// fall inside the grid.
// Complexity: O(1), allocates at most four points.
func (gg *GridGraph) Neighbors(p Point) []Point {
	offs := gg.NeighborOffsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		nx, ny := p.X+d[0], p.Y+d[1]
		if gg.InBounds(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}

	return out
}

// Adjacent reports whether a and b are both in bounds and at Manhattan
// distance exactly 1.
func (gg *GridGraph) Adjacent(a, b Point) bool {
	if !gg.Contains(a) || !gg.Contains(b) {
		return false
	}

	return abs(a.X-b.X)+abs(a.Y-b.Y) == 1
}

// Index maps p to its row‑major index: y*Width + x.
// The caller is responsible for p being in bounds.
// Complexity: O(1).
func (gg *GridGraph) Index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row‑major index back to a Point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Point {
	return Point{X: idx % gg.Width, Y: idx / gg.Width}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
