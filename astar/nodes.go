package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// noParent marks the start node (and untouched nodes).
const noParent = -1

// node is the per-cell search record.
type node struct {
	loc      gridgraph.Cell
	walkable bool
	g        float64 // best known cost from start
	h        float64 // Euclidean distance to goal, fixed for the search
	state    NodeState
	parent   int // arena index of the predecessor, noParent if none
}

// f is the total estimate; always derived so it never goes stale.
func (n *node) f() float64 { return n.g + n.h }

// nodeStore is the arena of nodes for exactly one search, indexed
// row-major like the grid. It is never shared between searches.
type nodeStore struct {
	grid  *gridgraph.Grid
	nodes []node
}

// newNodeStore allocates one node per cell with h computed against goal.
// Complexity: O(W×H) time and memory.
func newNodeStore(gg *gridgraph.Grid, goal gridgraph.Cell) *nodeStore {
	nodes := make([]node, gg.Len())
	for i := range nodes {
		c := gg.CellAt(i)
		nodes[i] = node{
			loc:      c,
			walkable: gg.Walkable(c.X, c.Y),
			h:        Heuristic(c, goal),
			state:    Untested,
			parent:   noParent,
		}
	}
	return &nodeStore{grid: gg, nodes: nodes}
}

// index returns the arena index of c; c must be in bounds.
func (s *nodeStore) index(c gridgraph.Cell) int {
	return s.grid.Index(c.X, c.Y)
}

// at returns the node stored at arena index i.
func (s *nodeStore) at(i int) *node {
	return &s.nodes[i]
}
