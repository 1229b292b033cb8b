package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Heuristic returns the straight-line (Euclidean) distance between a and b.
// Used as H, computed once per node against the fixed goal.
func Heuristic(a, b gridgraph.Cell) float64 {
	return euclid(a, b)
}

// StepCost returns the cost of moving between adjacent cells a and b:
// 1 for an axis-aligned move, √2 for a diagonal one.
func StepCost(a, b gridgraph.Cell) float64 {
	return euclid(a, b)
}

func euclid(a, b gridgraph.Cell) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
