// Package astar defines types and options for the grid search engine,
// including cancellation, expansion and backtrack hooks, the corner-cutting
// policy and an expansion budget.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// NodeState is the lifecycle marker of a node during one search.
type NodeState uint8

const (
	Untested NodeState = iota // Untested: never reached by an expansion.
	Open                      // Open: discovered, not yet committed to.
	Closed                    // Closed: expanded; terminal for the rest of the search.
)

// String implements fmt.Stringer.
func (s NodeState) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "untested"
	}
}

var (
	// ErrNilGrid is returned when a nil *gridgraph.Grid is passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal out of bounds")

	// ErrStartBlocked indicates the start cell is not walkable.
	ErrStartBlocked = errors.New("astar: start cell is not walkable")

	// ErrGoalBlocked indicates the goal cell is not walkable.
	ErrGoalBlocked = errors.New("astar: goal cell is not walkable")

	// ErrExpansionLimit indicates the search closed more nodes than
	// Options.MaxExpansions allows.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Option configures optional behavior of FindPath.
type Option func(*Options)

// Options holds configurable parameters for a search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled once per expansion.
	Ctx context.Context

	// OnExpand, if non-nil, is invoked when a node is closed, before its
	// neighbors are expanded (pre-order). Returning an error aborts the search.
	OnExpand func(c gridgraph.Cell) error

	// OnBacktrack, if non-nil, is invoked when every candidate of a node has
	// been tried without reaching the goal (post-order, dead end).
	// Returning an error aborts the search.
	OnBacktrack func(c gridgraph.Cell) error

	// CornerCutting allows a diagonal step between two orthogonally blocked
	// cells. Default true.
	CornerCutting bool

	// MaxExpansions, if positive, caps the number of closed nodes.
	// Default 0 (no limit).
	MaxExpansions int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No hooks
//   - Corner cutting allowed
//   - No expansion limit
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnExpand:      nil,
		OnBacktrack:   nil,
		CornerCutting: true,
		MaxExpansions: 0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand returns an Option that installs fn as the expansion hook.
func WithOnExpand(fn func(c gridgraph.Cell) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as the dead-end hook.
func WithOnBacktrack(fn func(c gridgraph.Cell) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithCornerCutting sets whether diagonal moves may squeeze between two
// blocked orthogonal neighbors.
func WithCornerCutting(allow bool) Option {
	return func(o *Options) {
		o.CornerCutting = allow
	}
}

// WithMaxExpansions returns an Option that caps the number of expansions.
// A limit ≤ 0 disables the cap.
func WithMaxExpansions(limit int) Option {
	return func(o *Options) {
		o.MaxExpansions = limit
	}
}

// Result captures the outcome of one search.
type Result struct {
	// Path lists the cells from the first step after start through the goal.
	// Empty when no path exists or when start == goal.
	Path []gridgraph.Cell

	// Found reports whether the goal was reached.
	Found bool

	// Cost is the accumulated G of the goal along Path (0 if not found).
	Cost float64

	// Expanded records closed cells in the order they were closed.
	// No cell appears twice.
	Expanded []gridgraph.Cell

	// Backtracks counts dead ends: nodes whose candidates were all exhausted.
	Backtracks int

	// MaxDepth is the deepest traversal stack reached, the start frame being depth 1.
	MaxDepth int
}
