package gridgraph

// Reachable runs a breadth-first search from start over the undirected links
// given as cell pairs, and returns a row-major slice of reach flags together
// with the number of cells reached.
//
// Links with an endpoint outside the grid are ignored. If start itself is out
// of bounds, nothing is reached.
//
// Time:   O(W·H + L), where L = len(links).
// Memory: O(W·H + L) for the adjacency lists and the queue.
func (gg *GridGraph) Reachable(start Point, links [][2]Point) ([]bool, int) {
	total := gg.Size()
	seen := make([]bool, total)
	if !gg.Contains(start) {
		return seen, 0
	}

	adj := make([][]int, total)
	for _, l := range links {
		if !gg.Contains(l[0]) || !gg.Contains(l[1]) {
			continue
		}
		a, b := gg.Index(l[0]), gg.Index(l[1])
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	i0 := gg.Index(start)
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen, len(queue)
}
