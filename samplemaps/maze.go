// SPDX-License-Identifier: MIT
// Package: gridpath/samplemaps
//
// maze.go: Maze(w, h, seed) generator.
//
// Canonical model:
//   • Rooms sit on even coordinates (0,0), (2,0), ...; everything else starts blocked.
//   • A randomised depth-first carve (explicit stack) opens the wall cell
//     between a room and an unvisited neighbor room, so every room is reachable.
//   • S is placed at (0,0), G at the room farthest along both axes.
//
// Complexity:
//   • Time: O(w*h). Space: O(w*h) for the cell buffer and stack.
//
// Determinism:
//   • All randomness comes from rand.New(rand.NewSource(seed)).

package samplemaps

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrMazeSize indicates a maze dimension below the minimum.
var ErrMazeSize = errors.New("samplemaps: maze must be at least 3x3")

const minMazeDim = 3

// Maze returns a w×h maze named "maze-WxH-seed".
func Maze(w, h int, seed int64) (Map, error) {
	if w < minMazeDim || h < minMazeDim {
		return Map{}, fmt.Errorf("samplemaps: maze %dx%d: %w", w, h, ErrMazeSize)
	}

	cells := make([][]byte, h)
	for y := range cells {
		cells[y] = make([]byte, w)
		for x := range cells[y] {
			cells[y][x] = '#'
		}
	}

	r := rand.New(rand.NewSource(seed))
	dirs := [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

	// 1) Carve from the top-left room with an explicit stack.
	cells[0][0] = '.'
	stack := [][2]int{{0, 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Collect unvisited neighbor rooms.
		var next [][2]int
		for _, d := range dirs {
			nx, ny := cur[0]+d[0], cur[1]+d[1]
			if nx >= 0 && nx < w && ny >= 0 && ny < h && cells[ny][nx] == '#' {
				next = append(next, [2]int{nx, ny})
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1] // dead end: backtrack
			continue
		}

		// Knock down the wall between cur and a random neighbor.
		n := next[r.Intn(len(next))]
		cells[(cur[1]+n[1])/2][(cur[0]+n[0])/2] = '.'
		cells[n[1]][n[0]] = '.'
		stack = append(stack, n)
	}

	// 2) Markers: S top-left, G at the last room on both axes.
	gx, gy := (w-1)&^1, (h-1)&^1
	cells[0][0] = 'S'
	cells[gy][gx] = 'G'

	rows := make([]string, h)
	for y := range cells {
		rows[y] = string(cells[y])
	}

	return Map{
		Name:        fmt.Sprintf("maze-%dx%d-%d", w, h, seed),
		Description: fmt.Sprintf("%dx%d maze carved with seed %d", w, h, seed),
		Rows:        rows,
	}, nil
}
