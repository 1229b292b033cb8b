package server

import (
	"errors"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Request errors.
var (
	// ErrNoGrid indicates a request with neither rows nor a map name.
	ErrNoGrid = errors.New("server: request needs rows or map")
	// ErrNoStart indicates that no start was given and the grid has no S marker.
	ErrNoStart = errors.New("server: no start cell")
	// ErrNoGoal indicates that no goal was given and the grid has no G marker.
	ErrNoGoal = errors.New("server: no goal cell")
)

// PathRequest is the body of POST /v1/path.
//
// The grid comes from Rows (ASCII, see gridgraph.ParseGrid) or, if Rows is
// empty, from the built-in map named Map. Start and Goal override the S and
// G markers of the grid.
type PathRequest struct {
	Rows          []string        `json:"rows,omitempty"`
	Map           string          `json:"map,omitempty"`
	Start         *gridgraph.Cell `json:"start,omitempty"`
	Goal          *gridgraph.Cell `json:"goal,omitempty"`
	CornerCutting *bool           `json:"cornerCutting,omitempty"`
	Conn4         bool            `json:"conn4,omitempty"`
}

// PathResponse is the outcome of one search.
type PathResponse struct {
	Found      bool             `json:"found"`
	Path       []gridgraph.Cell `json:"path"`
	Cost       float64          `json:"cost"`
	Expanded   int              `json:"expanded"`
	Backtracks int              `json:"backtracks"`
	MaxDepth   int              `json:"maxDepth"`
}

func newPathResponse(res *astar.Result) PathResponse {
	return PathResponse{
		Found:      res.Found,
		Path:       res.Path,
		Cost:       res.Cost,
		Expanded:   len(res.Expanded),
		Backtracks: res.Backtracks,
		MaxDepth:   res.MaxDepth,
	}
}

// MapResponse describes one built-in map.
type MapResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rows        []string `json:"rows"`
}

// Event types sent on the stream.
const (
	EventExpand    = "expand"
	EventBacktrack = "backtrack"
	EventResult    = "result"
	EventError     = "error"
)

// Event is one websocket message of GET /v1/path/stream.
type Event struct {
	Type   string          `json:"type"`
	Cell   *gridgraph.Cell `json:"cell,omitempty"`
	Result *PathResponse   `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}
