// Package render draws a grid and the trace of a search as text, one line
// per row, optionally coloured for terminals.
//
// Symbols (highest precedence first):
//
//	S  start        G  goal
//	*  path cell    o  expanded (closed) cell, not on the path
//	#  obstacle     .  free cell
//
// Colours are applied with aurora and can be switched off, in which case the
// output is plain ASCII suitable for logs and golden tests.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	mapset "github.com/deckarep/golang-set"
	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrNilGrid is returned when Render is given a nil grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Cell symbols.
const (
	SymStart    = 'S'
	SymGoal     = 'G'
	SymPath     = '*'
	SymExpanded = 'o'
	SymWall     = '#'
	SymFree     = '.'
)

// Option configures Render.
type Option func(*Options)

// Options holds rendering switches.
type Options struct {
	// Color enables ANSI colours. Default false.
	Color bool
	// Expanded marks closed cells that are not on the path. Default true.
	Expanded bool
	// Legend appends a one-line summary of the result. Default false.
	Legend bool
}

// DefaultOptions returns plain output with expanded cells marked.
func DefaultOptions() Options {
	return Options{Color: false, Expanded: true, Legend: false}
}

// WithColor toggles ANSI colours.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// WithExpanded toggles marking of expanded cells.
func WithExpanded(on bool) Option {
	return func(o *Options) { o.Expanded = on }
}

// WithLegend toggles the summary line after the grid.
func WithLegend(on bool) Option {
	return func(o *Options) { o.Legend = on }
}

// Render writes gg to w with start, goal and, if res is non-nil, the path and
// expanded cells of res overlaid.
// Complexity: O(W×H + |path| + |expanded|).
func Render(w io.Writer, gg *gridgraph.Grid, start, goal gridgraph.Cell, res *astar.Result, opts ...Option) error {
	if gg == nil {
		return ErrNilGrid
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	path := mapset.NewThreadUnsafeSet()
	expanded := mapset.NewThreadUnsafeSet()
	if res != nil {
		for _, c := range res.Path {
			path.Add(c)
		}
		if o.Expanded {
			for _, c := range res.Expanded {
				expanded.Add(c)
			}
		}
	}

	au := aurora.NewAurora(o.Color)
	bw := bufio.NewWriter(w)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := gridgraph.Cell{X: x, Y: y}
			var v interface{}
			switch {
			case c == start:
				v = au.Cyan(string(SymStart))
			case c == goal:
				v = au.Magenta(string(SymGoal))
			case path.Contains(c):
				v = au.Green(string(SymPath))
			case expanded.Contains(c):
				v = au.Yellow(string(SymExpanded))
			case !gg.IsWalkable(c):
				v = au.Red(string(SymWall))
			default:
				v = string(SymFree)
			}
			fmt.Fprint(bw, v)
		}
		bw.WriteByte('\n')
	}

	if o.Legend && res != nil {
		fmt.Fprintln(bw, Summary(res))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Summary formats the headline numbers of a search result.
func Summary(res *astar.Result) string {
	if res == nil {
		return "no result"
	}
	if !res.Found {
		return fmt.Sprintf("no path; expanded=%d backtracks=%d depth=%d",
			len(res.Expanded), res.Backtracks, res.MaxDepth)
	}
	return fmt.Sprintf("path steps=%d cost=%.3f expanded=%d backtracks=%d depth=%d",
		len(res.Path), res.Cost, len(res.Expanded), res.Backtracks, res.MaxDepth)
}
