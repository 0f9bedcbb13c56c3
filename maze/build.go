package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Build grows a perfect maze over a width×height lattice and returns its edges
// in acceptance order.
//
// Error Conditions:
//   - ErrInvalidDimension: width < 1 or height < 1.
//
// Steps:
//  1. Validate dimensions; a 1×1 grid yields an empty, non-nil slice.
//  2. visited = {(0,0)}; frontier = edges from (0,0) to its in-bounds neighbors.
//  3. While fewer than width*height cells are visited:
//     a. Pick a frontier entry (from→to) uniformly over the list.
//     b. Mark to visited and append (from→to) to the result.
//     c. Drop every frontier entry targeting to (stable filter).
//     d. Push (to→n) for each in-bounds, unvisited neighbor n of to, in the
//     order east, south, west, north.
//  4. Return the result.
//
// The frontier is never empty while cells remain: the lattice is connected, so
// some visited cell always borders an unvisited one.
//
// Complexity: O((W·H)·F) time, F = peak frontier length; O(W·H + F) memory.
func Build(width, height int, opts ...Option) ([]Edge, error) {
	// 1. Validate dimensions.
	gg, err := gridgraph.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("maze: build: %w", err)
	}
	cfg := newConfig(opts...)

	total := gg.Size()
	edges := make([]Edge, 0, total-1)

	// 2. Seed the tree with the origin.
	visited := make([]bool, total)
	origin := Vertex{}
	visited[gg.Index(origin)] = true
	count := 1

	var border frontier
	pushNeighbors(gg, &border, visited, origin)

	// 3. Grow until every cell is in the tree.
	for count < total {
		e := border.pick(cfg.rng)
		visited[gg.Index(e.To)] = true
		count++
		edges = append(edges, e)

		border.drop(e.To)
		pushNeighbors(gg, &border, visited, e.To)
	}

	return edges, nil
}

// pushNeighbors appends (v→n) for every in-bounds, unvisited neighbor n of v.
func pushNeighbors(gg *gridgraph.GridGraph, f *frontier, visited []bool, v Vertex) {
	for _, n := range gg.Neighbors(v) {
		if !visited[gg.Index(n)] {
			f.push(Edge{From: v, To: n})
		}
	}
}
