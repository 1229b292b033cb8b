package astar_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ------------------------------------------------------------------------
// Fixtures
// ------------------------------------------------------------------------

// Maps used across the scenarios. The gap map carries an L-shaped wall
// (column 3 rows 0–3, row 3 columns 2–5); (2,4)→(3,4) is the only crossing.
var (
	openRows = []string{
		"S...G..",
		".......",
		".......",
		".......",
		".......",
	}
	gapRows = []string{
		"S..#..G",
		"...#...",
		"...#...",
		"..####.",
		".......",
	}
	sealedRows = []string{
		"S..#..G",
		"...#...",
		"...#...",
		"..####.",
		"..#....",
	}
	enclosedRows = []string{
		"S......",
		"....###",
		"....#G#",
		"....###",
		".......",
	}
	cornerRows = []string{
		"S#...",
		"#....",
		"....G",
	}
)

// parse builds a grid and returns its markers, failing the test on error.
func parse(t testing.TB, rows []string) (*gridgraph.Grid, gridgraph.Cell, gridgraph.Cell) {
	t.Helper()
	gg, m, err := gridgraph.ParseGrid(rows, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.True(t, m.HasStart && m.HasGoal, "fixture needs S and G")
	return gg, m.Start, m.Goal
}

// assertValidPath checks adjacency, walkability, the goal endpoint and that
// Cost equals the summed step costs from start.
func assertValidPath(t *testing.T, gg *gridgraph.Grid, start, goal gridgraph.Cell, res *astar.Result) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, goal, res.Path[len(res.Path)-1], "path ends at goal")
	assert.NotContains(t, res.Path, start, "path excludes start")

	prev, cost := start, 0.0
	for _, c := range res.Path {
		dx, dy := c.X-prev.X, c.Y-prev.Y
		assert.True(t, dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 && (dx != 0 || dy != 0),
			"%v→%v is not a single grid step", prev, c)
		assert.True(t, gg.IsWalkable(c), "%v is blocked", c)
		cost += astar.StepCost(prev, c)
		prev = c
	}
	assert.InDelta(t, cost, res.Cost, 1e-9, "Cost must equal the accumulated step cost")
}

// assertUniqueExpanded checks no cell was closed twice.
func assertUniqueExpanded(t *testing.T, res *astar.Result) {
	t.Helper()
	seen := mapset.NewThreadUnsafeSet()
	for _, c := range res.Expanded {
		assert.True(t, seen.Add(c), "%v expanded twice", c)
	}
}

// ------------------------------------------------------------------------
// 1. Validation: precondition violations are reported before any search.
// ------------------------------------------------------------------------

func TestFindPath_Preconditions(t *testing.T) {
	gg, _, err := gridgraph.ParseGrid([]string{
		"..#",
		"...",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	cases := []struct {
		name        string
		grid        *gridgraph.Grid
		start, goal gridgraph.Cell
		err         error
	}{
		{"NilGrid", nil, gridgraph.Cell{}, gridgraph.Cell{X: 1}, astar.ErrNilGrid},
		{"StartOutOfBounds", gg, gridgraph.Cell{X: -1}, gridgraph.Cell{X: 1}, astar.ErrStartOutOfBounds},
		{"GoalOutOfBounds", gg, gridgraph.Cell{}, gridgraph.Cell{X: 3}, astar.ErrGoalOutOfBounds},
		{"StartBlocked", gg, gridgraph.Cell{X: 2}, gridgraph.Cell{}, astar.ErrStartBlocked},
		{"GoalBlocked", gg, gridgraph.Cell{}, gridgraph.Cell{X: 2}, astar.ErrGoalBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expanded := 0
			res, err := astar.FindPath(tc.grid, tc.start, tc.goal, astar.WithOnExpand(func(gridgraph.Cell) error {
				expanded++
				return nil
			}))
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, res)
			assert.Zero(t, expanded, "no search work before validation")
		})
	}
}

// ------------------------------------------------------------------------
// 2. Scenarios
// ------------------------------------------------------------------------

// TestFindPath_StartEqualsGoal pins the convention: found, empty path.
func TestFindPath_StartEqualsGoal(t *testing.T) {
	gg, start, _ := parse(t, openRows)
	res, err := astar.FindPath(gg, start, start)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Cost)
	assert.Empty(t, res.Expanded)
}

// TestFindPath_OpenGrid checks the straight run on an obstacle-free 7×5 map.
func TestFindPath_OpenGrid(t *testing.T) {
	gg, start, goal := parse(t, openRows)
	res, err := astar.FindPath(gg, start, goal)
	require.NoError(t, err)
	assertValidPath(t, gg, start, goal, res)

	assert.LessOrEqual(t, len(res.Path), 5)
	assert.Equal(t, []gridgraph.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}, res.Path)
	assert.InDelta(t, 4.0, res.Cost, 1e-12)
	assert.Equal(t, []gridgraph.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, res.Expanded)
	assert.Equal(t, 4, res.MaxDepth)
	assert.Zero(t, res.Backtracks)
}

// TestFindPath_OpenGridAllPairs checks every start/goal pair on an open grid
// stays within a small factor of the Chebyshev distance.
func TestFindPath_OpenGridAllPairs(t *testing.T) {
	gg, _, _ := parse(t, openRows)
	for si := 0; si < gg.Len(); si++ {
		for gi := 0; gi < gg.Len(); gi++ {
			start, goal := gg.CellAt(si), gg.CellAt(gi)
			if start == goal {
				continue
			}
			res, err := astar.FindPath(gg, start, goal)
			require.NoError(t, err)
			assertValidPath(t, gg, start, goal, res)

			cheb := max(abs(goal.X-start.X), abs(goal.Y-start.Y))
			assert.LessOrEqual(t, len(res.Path), 3*cheb, "%v→%v took %d steps", start, goal, len(res.Path))
		}
	}
}

// TestFindPath_Gap routes through the single opening of the L-shaped wall.
func TestFindPath_Gap(t *testing.T) {
	gg, start, goal := parse(t, gapRows)
	res, err := astar.FindPath(gg, start, goal)
	require.NoError(t, err)
	assertValidPath(t, gg, start, goal, res)
	assertUniqueExpanded(t, res)

	assert.Contains(t, res.Path, gridgraph.Cell{X: 2, Y: 4}, "must cross at the gap")
	assert.Contains(t, res.Path, gridgraph.Cell{X: 3, Y: 4})
	for _, blocked := range []gridgraph.Cell{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}} {
		assert.NotContains(t, res.Path, blocked)
	}
}

// TestFindPath_Sealed fills the gap: no path, and not an error.
func TestFindPath_Sealed(t *testing.T) {
	gg, start, goal := parse(t, sealedRows)
	res, err := astar.FindPath(gg, start, goal)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Cost)
	assertUniqueExpanded(t, res)

	// Exhaustive failure closes the whole reachable room.
	comps := gg.ConnectedComponents()
	require.NotEmpty(t, comps)
	assert.Len(t, res.Expanded, len(comps[0]))
	assert.Positive(t, res.Backtracks)
}

// TestFindPath_EnclosedGoal covers a goal walled in on all eight sides.
func TestFindPath_EnclosedGoal(t *testing.T) {
	gg, start, goal := parse(t, enclosedRows)
	res, err := astar.FindPath(gg, start, goal)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}

// TestFindPath_CornerCutting squeezes diagonally out of a corner only when allowed.
func TestFindPath_CornerCutting(t *testing.T) {
	gg, start, goal := parse(t, cornerRows)

	res, err := astar.FindPath(gg, start, goal)
	require.NoError(t, err)
	assertValidPath(t, gg, start, goal, res)
	assert.Equal(t, gridgraph.Cell{X: 1, Y: 1}, res.Path[0])

	res, err = astar.FindPath(gg, start, goal, astar.WithCornerCutting(false))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []gridgraph.Cell{start}, res.Expanded)
}

// TestFindPath_Conn4 never takes a diagonal step on a 4-connected grid.
func TestFindPath_Conn4(t *testing.T) {
	gg, m, err := gridgraph.ParseGrid(gapRows, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	require.NoError(t, err)
	res, err := astar.FindPath(gg, m.Start, m.Goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	prev := m.Start
	for _, c := range res.Path {
		assert.Equal(t, 1, abs(c.X-prev.X)+abs(c.Y-prev.Y), "%v→%v", prev, c)
		prev = c
	}
}

// ------------------------------------------------------------------------
// 3. Determinism and invariants over random maps
// ------------------------------------------------------------------------

// TestFindPath_Deterministic runs each query twice on fresh stores.
func TestFindPath_Deterministic(t *testing.T) {
	for _, rows := range [][]string{openRows, gapRows, sealedRows, cornerRows} {
		gg, start, goal := parse(t, rows)
		a, err := astar.FindPath(gg, start, goal)
		require.NoError(t, err)
		b, err := astar.FindPath(gg, start, goal)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

// TestFindPath_RandomMaps compares Found against a connectivity oracle and
// checks path validity and the closed-once invariant on seeded random maps.
func TestFindPath_RandomMaps(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		w, h := 2+r.Intn(14), 2+r.Intn(14)
		rows := make([][]bool, h)
		for y := range rows {
			rows[y] = make([]bool, w)
			for x := range rows[y] {
				rows[y][x] = r.Float64() > 0.35
			}
		}
		gg, err := gridgraph.NewGrid(rows, gridgraph.DefaultGridOptions())
		require.NoError(t, err)

		start := gridgraph.Cell{X: r.Intn(w), Y: r.Intn(h)}
		goal := gridgraph.Cell{X: r.Intn(w), Y: r.Intn(h)}
		if !gg.IsWalkable(start) || !gg.IsWalkable(goal) || start == goal {
			continue
		}

		res, err := astar.FindPath(gg, start, goal)
		require.NoError(t, err)
		assertUniqueExpanded(t, res)
		assert.Equal(t, gg.Connected(start, goal), res.Found, "map %d %v→%v:\n%s", i, start, goal, gg)
		if res.Found {
			assertValidPath(t, gg, start, goal, res)
			assert.Len(t, mapsetOf(res.Path).ToSlice(), len(res.Path), "path revisits a cell")
		} else {
			assert.Empty(t, res.Path)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Options: cancellation, hooks, budget
// ------------------------------------------------------------------------

func TestFindPath_ContextCanceled(t *testing.T) {
	gg, start, goal := parse(t, gapRows)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := astar.FindPath(gg, start, goal, astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Empty(t, res.Expanded)
}

func TestFindPath_NilContextIgnored(t *testing.T) {
	gg, start, goal := parse(t, openRows)
	//nolint:staticcheck // nil is the case under test
	res, err := astar.FindPath(gg, start, goal, astar.WithContext(nil))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestFindPath_OnExpandMatchesTrace(t *testing.T) {
	gg, start, goal := parse(t, gapRows)
	var seen []gridgraph.Cell
	backtracks := 0
	res, err := astar.FindPath(gg, start, goal,
		astar.WithOnExpand(func(c gridgraph.Cell) error {
			seen = append(seen, c)
			return nil
		}),
		astar.WithOnBacktrack(func(gridgraph.Cell) error {
			backtracks++
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Expanded, seen)
	assert.Equal(t, start, seen[0])
	assert.Equal(t, res.Backtracks, backtracks)
	assert.NotContains(t, seen, goal, "goal is recognised, never expanded")
}

func TestFindPath_HookErrorsAbort(t *testing.T) {
	errStop := errors.New("stop")
	gg, start, goal := parse(t, sealedRows)

	res, err := astar.FindPath(gg, start, goal, astar.WithOnExpand(func(gridgraph.Cell) error {
		return errStop
	}))
	assert.ErrorIs(t, err, errStop)
	require.NotNil(t, res)
	assert.Len(t, res.Expanded, 1)

	_, err = astar.FindPath(gg, start, goal, astar.WithOnBacktrack(func(gridgraph.Cell) error {
		return errStop
	}))
	assert.ErrorIs(t, err, errStop)
}

func TestFindPath_MaxExpansions(t *testing.T) {
	gg, start, goal := parse(t, gapRows)

	res, err := astar.FindPath(gg, start, goal, astar.WithMaxExpansions(2))
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)
	require.NotNil(t, res)
	assert.Len(t, res.Expanded, 2)

	res, err = astar.FindPath(gg, start, goal, astar.WithMaxExpansions(gg.Len()))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

// ------------------------------------------------------------------------
// helpers
// ------------------------------------------------------------------------

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func mapsetOf(cells []gridgraph.Cell) mapset.Set {
	s := mapset.NewThreadUnsafeSet()
	for _, c := range cells {
		s.Add(c)
	}
	return s
}
