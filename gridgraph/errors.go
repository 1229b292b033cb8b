package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadMapRune indicates an ASCII map contains an unknown cell symbol.
	ErrBadMapRune = errors.New("gridgraph: unknown map symbol")
	// ErrDuplicateMarker indicates an ASCII map contains a start or goal marker twice.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or goal marker")
)
