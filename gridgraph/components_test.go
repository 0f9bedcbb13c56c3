// File: gridgraph/components_test.go
package gridgraph

import (
	"testing"
)

// TestReachable_Path tests Reachable on a 3×2 grid whose links form a snake
// through every cell.
//
//	(0,0)-(1,0)-(2,0)
//	              |
//	(0,1)-(1,1)-(2,1)
func TestReachable_Path(t *testing.T) {
	gg, err := New(3, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	links := [][2]Point{
		{{0, 0}, {1, 0}},
		{{1, 0}, {2, 0}},
		{{2, 0}, {2, 1}},
		{{2, 1}, {1, 1}},
		{{1, 1}, {0, 1}},
	}

	seen, n := gg.Reachable(Point{}, links)
	if n != 6 {
		t.Fatalf("reached %d cells; want 6", n)
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("cell %v not reached", gg.Coordinate(i))
		}
	}
}

// TestReachable_Split tests that a missing link leaves part of the grid
// unreached, and that links are treated as undirected.
func TestReachable_Split(t *testing.T) {
	gg, _ := New(2, 2)
	links := [][2]Point{
		{{1, 0}, {0, 0}}, // reversed orientation
		{{0, 1}, {1, 1}},
	}

	seen, n := gg.Reachable(Point{}, links)
	if n != 2 {
		t.Fatalf("reached %d cells; want 2", n)
	}
	if !seen[gg.Index(Point{1, 0})] {
		t.Error("(1,0) should be reached through a reversed link")
	}
	if seen[gg.Index(Point{0, 1})] || seen[gg.Index(Point{1, 1})] {
		t.Error("bottom row should not be reached")
	}
}

// TestReachable_IgnoresOutOfBounds tests that out-of-range links and starts
// are tolerated.
func TestReachable_IgnoresOutOfBounds(t *testing.T) {
	gg, _ := New(2, 1)
	links := [][2]Point{
		{{0, 0}, {5, 5}},
		{{0, 0}, {1, 0}},
	}
	if _, n := gg.Reachable(Point{}, links); n != 2 {
		t.Errorf("reached %d cells; want 2", n)
	}
	if _, n := gg.Reachable(Point{-1, 0}, links); n != 0 {
		t.Errorf("out-of-bounds start reached %d cells; want 0", n)
	}
}
