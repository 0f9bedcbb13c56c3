package maze

import "math/rand"

// frontier is the ordered, duplicate-permitting list of candidate edges.
// Every entry points from a visited cell to a cell that was unvisited when the
// entry was pushed; drop keeps that true after each acceptance.
type frontier struct {
	edges []Edge
}

func (f *frontier) len() int { return len(f.edges) }

func (f *frontier) push(e Edge) {
	f.edges = append(f.edges, e)
}

// pick returns one entry chosen uniformly over the list (not over distinct
// targets). It consumes exactly one rng.Intn draw. The frontier must be
// non-empty.
func (f *frontier) pick(rng *rand.Rand) Edge {
	return f.edges[rng.Intn(f.len())]
}

// drop removes every entry whose target is to. Survivors keep their relative
// order, so the next pick sees the same list a fresh filtered copy would.
// Complexity: O(len) time, no allocation.
func (f *frontier) drop(to Vertex) {
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.To != to {
			kept = append(kept, e)
		}
	}
	// Zero the tail so the backing array does not pin stale entries.
	clear(f.edges[len(kept):])
	f.edges = kept
}
