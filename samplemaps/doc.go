// SPDX-License-Identifier: MIT
// Package: gridpath/samplemaps
//
// Package samplemaps ships named ASCII maps for demos, drivers and tests,
// plus a deterministic maze generator.
//
// Maps use the gridgraph ASCII format: '.' free, '#' blocked, 'S' start,
// 'G' goal. Every built-in map carries both markers.
//
// Built-ins:
//
//	open      7×5, no obstacles, S(0,0) → G(4,0).
//	gap       7×5, L-shaped wall with a single opening at (2,4).
//	sealed    gap with the opening filled: no path.
//	enclosed  goal walled in on all eight sides.
//	corner    start boxed in orthogonally; only a diagonal squeeze leads out.
//
// Determinism:
//   - Maze(w, h, seed) returns identical rows for identical arguments.
package samplemaps
