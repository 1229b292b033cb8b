// Package astar finds a path between two cells of a gridgraph.Grid.
//
// What:
//
//   - FindPath(grid, start, goal, opts...): locally-best-first depth-first
//     search with backtracking, Euclidean H and Euclidean step cost over the
//     grid's neighbors (8 by default, corner cutting allowed).
//   - Heuristic / StepCost: the cost model, exported for callers that score
//     paths themselves.
//   - Result: the path (start-exclusive, goal-inclusive), its cost, and a
//     trace of the search (expanded cells in closing order, backtracks, depth).
//
// Why:
//
//   - Games, simulators and routing demos that need a route around obstacles
//     quickly and deterministically, and can live with a route that is not
//     always the shortest.
//
// Key Types & Constants:
//
//   - NodeState: Untested, Open, Closed (node lifecycle; Closed is terminal)
//   - Option / Options: context, OnExpand / OnBacktrack hooks, corner cutting,
//     expansion budget
//   - Result: Path, Found, Cost, Expanded, Backtracks, MaxDepth
//
// Concurrency:
//
//   - A Grid is read-only and may be shared by concurrent FindPath calls.
//     Each call allocates its own node arena; nothing else is shared.
//
// See search.go for the traversal contract and error list.
package astar
