package maze

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Graph converts a maze into a gonum undirected graph so that gonum's
// algorithms (graph/topo, graph/path, ...) can run over it.
//
// Every cell becomes a node whose ID is its row-major index y*width+x,
// including cells no edge touches. Each maze edge becomes one undirected edge;
// repeated passages collapse into one.
//
// Error Conditions:
//   - ErrInvalidDimension: width < 1 or height < 1.
//   - ErrOutOfBounds     : an endpoint lies outside the grid.
//   - ErrNotAdjacent     : endpoints are not 4-directional neighbors.
//
// Complexity: O(W·H + E) time and memory.
func Graph(width, height int, edges []Edge) (*simple.UndirectedGraph, error) {
	gg, err := gridgraph.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("maze: graph: %w", err)
	}

	g := simple.NewUndirectedGraph()
	for i := 0; i < gg.Size(); i++ {
		g.AddNode(simple.Node(i))
	}
	for i, e := range edges {
		if !gg.Contains(e.From) || !gg.Contains(e.To) {
			return nil, fmt.Errorf("maze: graph: edge %d %v: %w", i, e, ErrOutOfBounds)
		}
		// Rejecting non-neighbors also rules out the self loops SetEdge panics on.
		if !gg.Adjacent(e.From, e.To) {
			return nil, fmt.Errorf("maze: graph: edge %d %v: %w", i, e, ErrNotAdjacent)
		}
		g.SetEdge(g.NewEdge(simple.Node(gg.Index(e.From)), simple.Node(gg.Index(e.To))))
	}

	return g, nil
}

// NodeVertex maps a node ID produced by Graph back to its cell on a grid of
// the given width. The caller is responsible for width ≥ 1; a zero width
// panics with a division by zero.
func NodeVertex(width int, id int64) Vertex {
	gg := gridgraph.GridGraph{Width: width}
	return gg.Coordinate(int(id))
}
