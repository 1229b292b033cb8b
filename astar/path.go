package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// reconstruct walks parent links from the node at arena index goal back to
// the start and returns the cells in start→goal order. The start cell itself
// (the only node without a parent) is not included.
// Complexity: O(L) for a path of L steps.
func (s *searcher) reconstruct(goal int) []gridgraph.Cell {
	path := make([]gridgraph.Cell, 0, 16)
	for n := s.store.at(goal); n.parent != noParent; n = s.store.at(n.parent) {
		path = append(path, n.loc)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
