// Package gridpath is a small toolkit for finding routes across 2D grids:
// a walkability model, a depth-first locally-best-first search with
// backtracking, and the surfaces around it (maps, rendering, HTTP, CLI).
//
// What is gridpath?
//
//	A deterministic, allocation-light path finder for tile maps:
//		• Grid model: walkable / blocked cells, 4- or 8-connectivity
//		• Cost model: Euclidean step cost and Euclidean heuristic
//		• Search: descend into the cheapest F = G + H neighbor, backtrack
//		  on dead ends, stop as soon as the goal shows up as a candidate
//		• Trace: expanded cells, backtracks and depth for every search
//
// Trade-offs:
//
//   - Fast and predictable: every cell is closed at most once, ties keep
//     neighbor order, no priority queue.
//   - Not optimal: closed cells are never reopened, so a found route can
//     be longer than the shortest one.
//
// Layout:
//
//	gridgraph/      Grid, Cell, connectivity, ASCII parsing, components
//	astar/          FindPath, cost model, hooks & options, Result
//	samplemaps/     pinned built-in maps and a seeded maze generator
//	render/         text rendering of a grid plus a search trace
//	server/         gin HTTP API and websocket trace stream
//	cmd/gridpath    one-shot CLI
//	cmd/gridpathd   HTTP daemon
//
// Quick ASCII example ('*' is the route, 'o' a closed dead end):
//
//	S***G..      So#.
//	.......      oo#G
//	found        no path: all 4 reachable cells closed
//
//	go get github.com/katalvlaran/gridpath/astar
package gridpath
