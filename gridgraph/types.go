// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity, diagonals included.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// Cell is a grid coordinate: 0 ≤ X < Width, 0 ≤ Y < Height.
// It is a plain value and safe to use as a map key.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 8- or 4-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn8}
}

// Grid is an immutable walkability matrix. Width and Height define
// dimensions; walkable holds the row-major copy of the input.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	walkable      []bool
	offsets       [][2]int
}

// Canonical discovery order. Searches iterate neighbors in exactly this
// order, so it doubles as the tie-break among equally ranked candidates.
var (
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}}
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
)
