package astar

// expand returns the admissible neighbors of the node at arena index from,
// in discovery order, relaxing them as it goes:
//
//  1. Out-of-bounds and non-walkable cells are skipped.
//  2. Closed nodes are skipped.
//  3. Open nodes are kept only if the route through from is strictly
//     cheaper; then parent and g are updated. Otherwise they stay untouched.
//  4. Untested nodes are always kept: parent = from, g set, state = Open.
//
// Diagonal steps squeezing between two blocked orthogonal cells are skipped
// when corner cutting is disabled.
//
// Complexity: O(d) with d = 4 or 8.
func (s *searcher) expand(from int) []int {
	cur := s.store.at(from)
	cx, cy := cur.loc.X, cur.loc.Y
	offsets := s.grid.NeighborOffsets()
	out := make([]int, 0, len(offsets))

	for _, d := range offsets {
		nx, ny := cx+d[0], cy+d[1]
		if !s.grid.InBounds(nx, ny) {
			continue
		}
		i := s.grid.Index(nx, ny)
		nb := s.store.at(i)
		if !nb.walkable || nb.state == Closed {
			continue
		}
		if !s.opts.CornerCutting && d[0] != 0 && d[1] != 0 &&
			(!s.grid.Walkable(cx+d[0], cy) || !s.grid.Walkable(cx, cy+d[1])) {
			continue
		}

		gCandidate := cur.g + StepCost(cur.loc, nb.loc)
		switch nb.state {
		case Open:
			if gCandidate >= nb.g {
				continue // existing route is at least as good
			}
			nb.parent = from
			nb.g = gCandidate
		case Untested:
			nb.parent = from
			nb.g = gCandidate
			nb.state = Open
		}
		out = append(out, i)
	}

	return out
}
