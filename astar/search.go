// Package astar implements a depth-first, locally-best-first grid search:
// from each node it descends into the admissible neighbor with the lowest
// F = G + H, backtracks on dead ends, and stops as soon as the goal shows up
// among a node's candidates.
//
// The traversal is the recursive algorithm
//
//	search(n):
//	    close n
//	    for c in sortByF(expand(n)):
//	        if c == goal: return true
//	        if search(c): return true
//	    return false
//
// run on an explicit stack, so grid size never bounds call-stack depth.
//
// Key properties:
//   - Closed nodes are never reopened, even if a cheaper route appears later.
//     The result is therefore not guaranteed to be the shortest path.
//   - Ties in F keep discovery order (stable sort over the grid's canonical
//     neighbor order), which makes results deterministic.
//   - A candidate closed by a deeper frame before its turn comes is skipped,
//     so every node is expanded at most once.
//
// Complexity:
//
//   - Time:   O(W×H × d log d), each cell is closed at most once.
//   - Memory: O(W×H) for the node arena and the traversal stack.
//
// Options:
//
//   - WithContext(ctx)          cancellation, polled once per expansion.
//   - WithOnExpand(fn)          pre-order hook; error aborts the search.
//   - WithOnBacktrack(fn)       dead-end hook; error aborts the search.
//   - WithCornerCutting(bool)   diagonal squeeze policy (default allowed).
//   - WithMaxExpansions(n)      expansion budget (default unlimited).
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds,
//     ErrStartBlocked, ErrGoalBlocked   before any search work.
//   - ErrExpansionLimit                 budget exhausted.
//   - context.Canceled / DeadlineExceeded, hook errors (wrapped).
//
// "No path" is not an error: Result.Found is false and Result.Path is empty.
package astar

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// frame is one level of the traversal stack: a closed node, its candidates
// sorted by F, and the cursor of the next candidate to try.
type frame struct {
	node  int
	cands []int
	next  int
}

// searcher encapsulates state during one search.
type searcher struct {
	grid  *gridgraph.Grid // read-only, may be shared between searches
	store *nodeStore      // exclusively owned by this search
	goal  int             // arena index of the goal
	opts  Options
	res   *Result
}

// FindPath searches gg from start to goal and returns the path found, if any.
//
// Preconditions (checked before any work): gg non-nil, start and goal in
// bounds and walkable. When start == goal the result is Found with an empty
// Path. When the goal cannot be reached the result has Found == false and an
// empty Path; err is nil.
//
// On cancellation, hook failure or an exhausted expansion budget the partial
// Result (trace so far) is returned along with the error.
func FindPath(gg *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Result, error) {
	// 1. Validate inputs
	if gg == nil {
		return nil, ErrNilGrid
	}
	if !gg.Contains(start) {
		return nil, fmt.Errorf("astar: start %v: %w", start, ErrStartOutOfBounds)
	}
	if !gg.Contains(goal) {
		return nil, fmt.Errorf("astar: goal %v: %w", goal, ErrGoalOutOfBounds)
	}
	if !gg.IsWalkable(start) {
		return nil, fmt.Errorf("astar: start %v: %w", start, ErrStartBlocked)
	}
	if !gg.IsWalkable(goal) {
		return nil, fmt.Errorf("astar: goal %v: %w", goal, ErrGoalBlocked)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Nothing to walk
	res := &Result{Path: []gridgraph.Cell{}}
	if start == goal {
		res.Found = true
		return res, nil
	}

	// 4. Fresh node arena for this search only
	store := newNodeStore(gg, goal)
	s := &searcher{
		grid:  gg,
		store: store,
		goal:  store.index(goal),
		opts:  o,
		res:   res,
	}

	found, err := s.run(store.index(start))
	if err != nil {
		return res, err
	}
	if found {
		res.Found = true
		res.Path = s.reconstruct(s.goal)
		res.Cost = store.at(s.goal).g
	}

	return res, nil
}

// run drives the traversal from the start node until the goal appears as a
// candidate or every branch is exhausted.
func (s *searcher) run(start int) (bool, error) {
	root := s.store.at(start)
	root.g = 0
	root.parent = noParent

	first, err := s.enter(start)
	if err != nil {
		return false, err
	}
	stack := []frame{first}
	s.res.MaxDepth = 1

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 1. Dead end: every candidate tried, return to the caller frame
		if top.next == len(top.cands) {
			s.res.Backtracks++
			if s.opts.OnBacktrack != nil {
				loc := s.store.at(top.node).loc
				if err = s.opts.OnBacktrack(loc); err != nil {
					return false, fmt.Errorf("astar: OnBacktrack hook for %v: %w", loc, err)
				}
			}
			stack = stack[:len(stack)-1]
			continue
		}

		// 2. Next candidate in F order
		c := top.cands[top.next]
		top.next++

		// 3. Goal arrival: its parent and g were set by expand
		if c == s.goal {
			return true, nil
		}

		// 4. Closed by a deeper frame since this list was built
		if s.store.at(c).state == Closed {
			continue
		}

		// 5. Descend
		fr, err := s.enter(c)
		if err != nil {
			return false, err
		}
		stack = append(stack, fr)
		if len(stack) > s.res.MaxDepth {
			s.res.MaxDepth = len(stack)
		}
	}

	return false, nil
}

// enter commits to node i: closes it, records it, expands it and sorts the
// candidates by F, ties kept in discovery order.
func (s *searcher) enter(i int) (frame, error) {
	// 1. Cancellation check
	select {
	case <-s.opts.Ctx.Done():
		return frame{}, fmt.Errorf("astar: search aborted: %w", s.opts.Ctx.Err())
	default:
	}

	// 2. Budget
	if s.opts.MaxExpansions > 0 && len(s.res.Expanded) >= s.opts.MaxExpansions {
		return frame{}, fmt.Errorf("astar: %d expansions: %w", len(s.res.Expanded), ErrExpansionLimit)
	}

	// 3. Close and record
	n := s.store.at(i)
	n.state = Closed
	s.res.Expanded = append(s.res.Expanded, n.loc)

	// 4. Pre-order hook
	if s.opts.OnExpand != nil {
		if err := s.opts.OnExpand(n.loc); err != nil {
			return frame{}, fmt.Errorf("astar: OnExpand hook for %v: %w", n.loc, err)
		}
	}

	// 5. Expand and rank
	cands := s.expand(i)
	slices.SortStableFunc(cands, func(a, b int) int {
		return cmp.Compare(s.store.at(a).f(), s.store.at(b).f())
	})

	return frame{node: i, cands: cands}, nil
}
