// Package maze defines the vertex and edge types, sentinel errors and build
// options for frontier-growth maze generation.
package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// ErrInvalidDimension indicates width or height below 1.
// It is the same sentinel as gridgraph.ErrInvalidDimension.
var ErrInvalidDimension = gridgraph.ErrInvalidDimension

// ErrOutOfBounds indicates an edge endpoint outside [0,width)×[0,height).
var ErrOutOfBounds = errors.New("maze: edge endpoint out of bounds")

// ErrNotAdjacent indicates an edge whose endpoints are not 4-directional
// neighbors (including self loops).
var ErrNotAdjacent = errors.New("maze: edge endpoints are not adjacent")

// ErrDuplicateEdge indicates the same undirected edge appears twice.
var ErrDuplicateEdge = errors.New("maze: duplicate edge")

// ErrCycle indicates the edges contain a cycle.
var ErrCycle = errors.New("maze: edges form a cycle")

// ErrNotSpanning indicates the edges do not connect every cell.
var ErrNotSpanning = errors.New("maze: edges do not span the grid")

// Vertex identifies one lattice cell by its (X, Y) coordinates.
type Vertex = gridgraph.Point

// Edge is an accepted (or candidate) connection between two adjacent cells.
// From was already part of the tree; To is the cell it reached.
type Edge struct {
	From Vertex
	To   Vertex
}

// String renders the edge as a literal tuple "((x1, y1), (x2, y2))".
func (e Edge) String() string {
	return fmt.Sprintf("(%s, %s)", e.From, e.To)
}

// Key returns an orientation-free form of e: the lexicographically smaller
// endpoint (by X, then Y) comes first. Two edges describe the same passage iff
// their keys are equal.
func (e Edge) Key() Edge {
	a, b := e.From, e.To
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	return Edge{From: a, To: b}
}
