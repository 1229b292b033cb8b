// Package gridgraph treats a rectangular 2D walkability matrix as a graph of
// cells, the substrate every search in gridpath runs on.
//
// What:
//
//   - Grid wraps a [][]bool matrix (true = walkable) with a chosen connectivity.
//   - Answers bounds and walkability queries in O(1) on a flat row-major copy.
//   - Publishes the canonical neighbor discovery order used by searches.
//   - Parses and prints ASCII maps ('.', '#', 'S', 'G').
//   - Labels connected components of walkable cells ("rooms").
//
// Why:
//
//   - Game maps and simulators: a fixed obstacle layout queried many times.
//   - Tests and drivers: cheap reachability oracle next to a heuristic search.
//
// Complexity:
//
//   - NewGrid, ParseGrid:  O(W×H), Memory: O(W×H).
//   - InBounds, Walkable:  O(1).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//
// Options:
//
//   - GridOptions.Conn: Conn8 (default, diagonals allowed) or Conn4.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadMapRune: ASCII map holds a rune outside ".#SG".
//   - ErrDuplicateMarker: ASCII map holds more than one 'S' or 'G'.
package gridgraph
