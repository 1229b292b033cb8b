package gridgraph

import (
	"fmt"
	"strings"
)

// ASCII map symbols.
const (
	SymbolFree    = '.'
	SymbolBlocked = '#'
	SymbolStart   = 'S'
	SymbolGoal    = 'G'
)

// Markers carries the optional start/goal positions found in an ASCII map.
type Markers struct {
	Start, Goal       Cell
	HasStart, HasGoal bool
}

// ParseGrid builds a Grid from ASCII rows, one string per y.
// '.' is walkable, '#' is blocked, 'S' and 'G' are walkable cells that also
// record the start and goal. Surrounding whitespace of each row is trimmed.
//
// Errors:
//   - ErrEmptyGrid / ErrNonRectangular as for NewGrid.
//   - ErrBadMapRune wrapped with the offending position.
//   - ErrDuplicateMarker if 'S' or 'G' appears more than once.
//
// Complexity: O(W×H).
func ParseGrid(rows []string, opts GridOptions) (*Grid, Markers, error) {
	var m Markers
	matrix := make([][]bool, 0, len(rows))
	for y, raw := range rows {
		line := []rune(strings.TrimSpace(raw))
		row := make([]bool, len(line))
		for x, r := range line {
			switch r {
			case SymbolFree:
				row[x] = true
			case SymbolBlocked:
				row[x] = false
			case SymbolStart:
				if m.HasStart {
					return nil, Markers{}, fmt.Errorf("gridgraph: second %q at (%d,%d): %w", r, x, y, ErrDuplicateMarker)
				}
				m.Start, m.HasStart = Cell{X: x, Y: y}, true
				row[x] = true
			case SymbolGoal:
				if m.HasGoal {
					return nil, Markers{}, fmt.Errorf("gridgraph: second %q at (%d,%d): %w", r, x, y, ErrDuplicateMarker)
				}
				m.Goal, m.HasGoal = Cell{X: x, Y: y}, true
				row[x] = true
			default:
				return nil, Markers{}, fmt.Errorf("gridgraph: %q at (%d,%d): %w", r, x, y, ErrBadMapRune)
			}
		}
		matrix = append(matrix, row)
	}

	gg, err := NewGrid(matrix, opts)
	if err != nil {
		return nil, Markers{}, err
	}

	return gg, m, nil
}

// String renders the grid in the ASCII format accepted by ParseGrid,
// without markers. Rows are separated by '\n'.
func (gg *Grid) String() string {
	var sb strings.Builder
	sb.Grow(gg.Len() + gg.Height)
	for y := 0; y < gg.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < gg.Width; x++ {
			if gg.walkable[gg.Index(x, y)] {
				sb.WriteByte(SymbolFree)
			} else {
				sb.WriteByte(SymbolBlocked)
			}
		}
	}
	return sb.String()
}
