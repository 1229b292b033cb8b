package gridgraph

// ConnectedComponents finds all contiguous regions ("rooms") of walkable
// cells according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Len())
	var comps [][]int
	for i, ok := range gg.walkable {
		if !ok || seen[i] {
			continue // obstacle or already labelled
		}
		comps = append(comps, gg.bfs(i, seen))
	}
	return comps
}

// Connected reports whether a and b are both walkable and lie in the same
// component. It ignores any search policy (e.g. corner-cutting rules),
// so it is an upper bound on what a search can reach.
// Time: O(W·H·d) worst case.
func (gg *Grid) Connected(a, b Cell) bool {
	if !gg.IsWalkable(a) || !gg.IsWalkable(b) {
		return false
	}
	target := gg.Index(b.X, b.Y)
	seen := make([]bool, gg.Len())
	for _, i := range gg.bfs(gg.Index(a.X, a.Y), seen) {
		if i == target {
			return true
		}
	}
	return false
}

// bfs collects the component that contains index i0, marking seen.
func (gg *Grid) bfs(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.Walkable(vx, vy) {
				continue
			}
			vi := gg.Index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
