// Package climb provides breadth-first route search over a heightmap.Grid,
// returning the fewest steps from a start cell to the grid's end cell.
//
// Steps between orthogonal neighbors are gated by a heightmap.Rule,
// with optional hooks, step limiting, tracing, and parallel multi-source search.
package climb

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Engine runs searches toward the end cell of a single Grid.
// It holds no per-search state and is safe for concurrent use.
type Engine struct {
	grid *heightmap.Grid
	opts Options
}

// state pairs a cell with its distance from the search origin.
type state struct {
	pos   heightmap.Position
	steps int
}

// walker encapsulates mutable state for one search.
type walker struct {
	grid    *heightmap.Grid
	opts    Options
	ctx     context.Context
	goal    heightmap.Position
	queue   []state
	visited map[heightmap.Position]struct{}
	res     *Result // nil unless the search is traced
}

// New prepares an Engine for g, applying any number of functional Options.
// Returns ErrGridNil for a nil grid or ErrOptionViolation for bad options.
func New(g *heightmap.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{grid: g, opts: o}, nil
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *heightmap.Grid { return e.grid }

// SearchFrom returns the fewest steps from start to the grid's end cell,
// or Unreachable if the frontier empties first. An unreachable goal is not
// an error; errors are reserved for ErrStartOutOfBounds, cancellation, and
// OnVisit hook failures.
func (e *Engine) SearchFrom(start heightmap.Position) (int, error) {
	return e.searchFrom(e.opts.Ctx, start)
}

// Search runs SearchFrom on the grid's designated start.
func (e *Engine) Search() (int, error) {
	return e.SearchFrom(e.grid.Start())
}

// Trace runs the same search as SearchFrom but keeps the dequeue order and
// parent links, so the route can be rebuilt with Result.PathTo.
func (e *Engine) Trace(start heightmap.Position) (*Result, error) {
	w, err := e.newWalker(e.opts.Ctx, start, true)
	if err != nil {
		return nil, err
	}
	steps, err := w.run(start)
	w.res.Steps = steps
	w.res.Found = steps != Unreachable

	return w.res, err
}

// BestPath returns the minimum SearchFrom result over every cell at
// heightmap.Lowest, or Unreachable if none of them reaches the goal.
// With Workers > 1 the searches fan out over a bounded errgroup; hooks must
// then be safe for concurrent use. The first error cancels the rest.
func (e *Engine) BestPath() (int, error) {
	starts := e.grid.PositionsAt(heightmap.Lowest)
	log := e.opts.Logger
	log.Debug("climb: best path", "candidates", len(starts), "workers", e.opts.Workers)

	best := Unreachable
	if e.opts.Workers <= 1 {
		for _, s := range starts {
			steps, err := e.searchFrom(e.opts.Ctx, s)
			if err != nil {
				return Unreachable, err
			}
			best = min(best, steps)
		}
		log.Debug("climb: best path done", "steps", best)
		return best, nil
	}

	results := make([]int, len(starts))
	group, groupCtx := errgroup.WithContext(e.opts.Ctx)
	group.SetLimit(e.opts.Workers)
	for i, s := range starts {
		idx, start := i, s
		group.Go(func() error {
			steps, err := e.searchFrom(groupCtx, start)
			if err != nil {
				return fmt.Errorf("search from %v: %w", start, err)
			}
			results[idx] = steps
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Unreachable, err
	}
	for _, steps := range results {
		best = min(best, steps)
	}
	log.Debug("climb: best path done", "steps", best)

	return best, nil
}

// searchFrom runs one untraced search under ctx.
func (e *Engine) searchFrom(ctx context.Context, start heightmap.Position) (int, error) {
	w, err := e.newWalker(ctx, start, false)
	if err != nil {
		return Unreachable, err
	}
	return w.run(start)
}

// newWalker validates start and allocates per-search state.
func (e *Engine) newWalker(ctx context.Context, start heightmap.Position, traced bool) (*walker, error) {
	if !e.grid.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	n := e.grid.Rows() * e.grid.Cols()
	w := &walker{
		grid:    e.grid,
		opts:    e.opts,
		ctx:     ctx,
		goal:    e.grid.End(),
		queue:   make([]state, 0, n),
		visited: make(map[heightmap.Position]struct{}, n),
	}
	if traced {
		w.res = &Result{
			Start:  start,
			Steps:  Unreachable,
			Order:  make([]heightmap.Position, 0, n),
			Parent: make(map[heightmap.Position]heightmap.Position, n),
		}
	}
	return w, nil
}

// run seeds the frontier with start and processes it until the goal is
// dequeued, the frontier is exhausted, or the search is aborted.
func (w *walker) run(start heightmap.Position) (int, error) {
	w.enqueue(state{pos: start}, start, false)
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return Unreachable, w.ctx.Err()
		default:
		}

		s := w.dequeue()
		if err := w.visit(s); err != nil {
			return Unreachable, err
		}
		if s.pos == w.goal {
			return s.steps, nil
		}
		w.expand(s)
	}
	return Unreachable, nil
}

// enqueue marks s visited, records its parent when traced, calls OnEnqueue,
// and appends it to the frontier.
func (w *walker) enqueue(s state, parent heightmap.Position, hasParent bool) {
	w.visited[s.pos] = struct{}{}
	if w.res != nil && hasParent {
		w.res.Parent[s.pos] = parent
	}
	w.opts.OnEnqueue(s.pos, s.steps)
	w.queue = append(w.queue, s)
}

// dequeue pops the first state, invokes OnDequeue, and returns it.
func (w *walker) dequeue() state {
	s := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(s.pos, s.steps)
	if w.opts.Trace {
		w.opts.Logger.Debug("climb: dequeue", "row", s.pos.Row, "col", s.pos.Col, "steps", s.steps)
	}
	return s
}

// visit records the cell in Order when traced and calls OnVisit.
func (w *walker) visit(s state) error {
	if w.res != nil {
		w.res.Order = append(w.res.Order, s.pos)
	}
	if err := w.opts.OnVisit(s.pos, s.steps); err != nil {
		return fmt.Errorf("climb: OnVisit error at %v: %w", s.pos, err)
	}
	return nil
}

// expand enqueues every unvisited neighbor the rule admits, honoring MaxSteps.
func (w *walker) expand(s state) {
	next := s.steps + 1
	if w.opts.MaxSteps > 0 && next > w.opts.MaxSteps {
		return
	}
	for _, n := range w.grid.NeighborsFunc(s.pos, w.opts.Rule) {
		if _, seen := w.visited[n]; seen {
			continue
		}
		w.enqueue(state{pos: n, steps: next}, s.pos, true)
	}
}
