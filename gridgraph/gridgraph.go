// Package gridgraph provides utilities to treat a 2D walkability matrix
// as a graph. It supports:
//
//   - Eight- or four-connectivity (Conn8 or Conn4)
//   - O(1) bounds and walkability checks on a flat row-major copy
//   - Identification of connected components of walkable cells
//   - ASCII map parsing and printing
//
// Cells whose input value is true are walkable; false cells are obstacles.
package gridgraph

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// walkable[y][x]. It copies the input, so later mutation by the caller does
// not leak into the grid.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(walkable [][]bool, opts GridOptions) (*Grid, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walkable), len(walkable[0])
	for _, row := range walkable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Flatten row-major: cells[y*w+x]
	cells := make([]bool, w*h)
	for y := 0; y < h; y++ {
		copy(cells[y*w:(y+1)*w], walkable[y])
	}

	return newGrid(w, h, cells, opts), nil
}

// newGrid wires a flat cell slice without validation; callers own cells.
func newGrid(w, h int, cells []bool, opts GridOptions) *Grid {
	offsets := offsets8
	if opts.Conn == Conn4 {
		offsets = offsets4
	}

	return &Grid{
		Width:    w,
		Height:   h,
		Conn:     opts.Conn,
		walkable: cells,
		offsets:  offsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is a traversable cell.
// Out-of-bounds coordinates are reported as not walkable; callers that need
// to tell the two apart must call InBounds first.
// Complexity: O(1).
func (gg *Grid) Walkable(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}
	return gg.walkable[gg.Index(x, y)]
}

// Contains reports whether c lies within the grid boundaries.
func (gg *Grid) Contains(c Cell) bool { return gg.InBounds(c.X, c.Y) }

// IsWalkable reports whether c is in bounds and walkable.
func (gg *Grid) IsWalkable(c Cell) bool { return gg.Walkable(c.X, c.Y) }

// NeighborOffsets returns the precomputed neighbor offsets in canonical
// discovery order. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *Grid) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Len returns the number of cells, Width×Height.
func (gg *Grid) Len() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *Grid) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// CellAt converts a row-major index back to a Cell.
func (gg *Grid) CellAt(idx int) Cell {
	x, y := gg.Coordinate(idx)
	return Cell{X: x, Y: y}
}

// Rows returns a fresh [][]bool copy of the matrix, indexed [y][x].
func (gg *Grid) Rows() [][]bool {
	rows := make([][]bool, gg.Height)
	for y := 0; y < gg.Height; y++ {
		rows[y] = make([]bool, gg.Width)
		copy(rows[y], gg.walkable[y*gg.Width:(y+1)*gg.Width])
	}
	return rows
}

// WithBlocked returns a copy of the grid with the given cells marked as
// obstacles. Out-of-bounds cells are ignored. The receiver is not modified.
// Complexity: O(W×H + len(cells)).
func (gg *Grid) WithBlocked(cells ...Cell) *Grid {
	cp := make([]bool, len(gg.walkable))
	copy(cp, gg.walkable)
	for _, c := range cells {
		if gg.Contains(c) {
			cp[gg.Index(c.X, c.Y)] = false
		}
	}
	return newGrid(gg.Width, gg.Height, cp, GridOptions{Conn: gg.Conn})
}
