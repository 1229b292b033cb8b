// SPDX-License-Identifier: MIT
// Package: gridpath/samplemaps
//
// samplemaps.go: registry of built-in maps.

package samplemaps

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrUnknownMap indicates Get was asked for a name that is not registered.
var ErrUnknownMap = errors.New("samplemaps: unknown map")

// Map is a named ASCII map.
type Map struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rows        []string `json:"rows"`
}

// Grid parses the map into a grid plus its start/goal markers.
func (m Map) Grid(opts gridgraph.GridOptions) (*gridgraph.Grid, gridgraph.Markers, error) {
	gg, mk, err := gridgraph.ParseGrid(m.Rows, opts)
	if err != nil {
		return nil, gridgraph.Markers{}, fmt.Errorf("samplemaps: %s: %w", m.Name, err)
	}
	return gg, mk, nil
}

// builtins is the read-only registry; Get hands out copies of Rows.
var builtins = map[string]Map{
	"open": {
		Name:        "open",
		Description: "7x5 open field, start (0,0), goal (4,0)",
		Rows: []string{
			"S...G..",
			".......",
			".......",
			".......",
			".......",
		},
	},
	"gap": {
		Name:        "gap",
		Description: "7x5 L-shaped wall, the only crossing runs through (2,4)",
		Rows: []string{
			"S..#..G",
			"...#...",
			"...#...",
			"..####.",
			".......",
		},
	},
	"sealed": {
		Name:        "sealed",
		Description: "gap with (2,4) filled, start and goal are separated",
		Rows: []string{
			"S..#..G",
			"...#...",
			"...#...",
			"..####.",
			"..#....",
		},
	},
	"enclosed": {
		Name:        "enclosed",
		Description: "goal (5,2) walled in on all eight sides",
		Rows: []string{
			"S......",
			"....###",
			"....#G#",
			"....###",
			".......",
		},
	},
	"corner": {
		Name:        "corner",
		Description: "start boxed in orthogonally, reachable only by corner cutting",
		Rows: []string{
			"S#...",
			"#....",
			"....G",
		},
	},
}

// Names returns the registered map names in lexical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the map registered under name, or ErrUnknownMap.
// The returned Rows slice is a copy.
func Get(name string) (Map, error) {
	m, ok := builtins[name]
	if !ok {
		return Map{}, fmt.Errorf("samplemaps: %q: %w", name, ErrUnknownMap)
	}
	m.Rows = append([]string(nil), m.Rows...)
	return m, nil
}
