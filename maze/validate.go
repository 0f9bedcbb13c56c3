package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Validate reports whether edges form a spanning tree of the width×height
// lattice, i.e. a perfect maze. It returns nil on success.
//
// Error Conditions (checked in this order, first failure wins):
//   - ErrInvalidDimension : width < 1 or height < 1.
//   - ErrOutOfBounds      : an endpoint lies outside the grid.
//   - ErrNotAdjacent      : endpoints are not 4-directional neighbors.
//   - ErrDuplicateEdge    : the same passage appears twice, in either orientation.
//   - ErrCycle            : an edge closes a cycle.
//   - ErrNotSpanning      : some cell is unreachable from (0,0).
//
// Steps:
//  1. Validate dimensions via gridgraph.New.
//  2. For each edge: bounds, adjacency and duplicate checks, then a
//     disjoint-set union (path compression, union by rank); joining two cells
//     already in one set means a cycle.
//  3. Confirm with a BFS from (0,0) that every cell is reached. With cycles
//     already ruled out, this also pins the edge count at width*height-1.
//
// Complexity: O(W·H + E·α(W·H)) time, O(W·H + E) memory.
func Validate(width, height int, edges []Edge) error {
	// 1. Dimensions.
	gg, err := gridgraph.New(width, height)
	if err != nil {
		return fmt.Errorf("maze: validate: %w", err)
	}

	// 2. Per-edge checks with a disjoint-set forest over row-major indices.
	total := gg.Size()
	parent := make([]int, total)
	rank := make([]int, total)
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	seen := make(map[Edge]struct{}, len(edges))
	links := make([][2]gridgraph.Point, 0, len(edges))
	for i, e := range edges {
		if !gg.Contains(e.From) || !gg.Contains(e.To) {
			return fmt.Errorf("maze: validate: edge %d %v: %w", i, e, ErrOutOfBounds)
		}
		if !gg.Adjacent(e.From, e.To) {
			return fmt.Errorf("maze: validate: edge %d %v: %w", i, e, ErrNotAdjacent)
		}
		key := e.Key()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("maze: validate: edge %d %v: %w", i, e, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}

		ru, rv := find(gg.Index(e.From)), find(gg.Index(e.To))
		if ru == rv {
			return fmt.Errorf("maze: validate: edge %d %v: %w", i, e, ErrCycle)
		}
		// Union by rank: attach the shallower tree under the deeper root.
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		links = append(links, [2]gridgraph.Point{e.From, e.To})
	}

	// 3. Spanning check.
	if _, reached := gg.Reachable(Vertex{}, links); reached != total {
		return fmt.Errorf("maze: validate: reached %d of %d cells: %w", reached, total, ErrNotSpanning)
	}

	return nil
}
