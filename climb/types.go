// Package climb provides tunable options, results, and error definitions
// for breadth-first route search over a heightmap.Grid.
package climb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Unreachable is the step count reported when the goal cannot be reached.
// It compares greater than every real path length, so a minimum taken over
// several searches is never decided by it while any search succeeds.
const Unreachable = math.MaxInt

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("climb: grid is nil")

	// ErrStartOutOfBounds is returned when a search starts outside the grid.
	ErrStartOutOfBounds = errors.New("climb: start position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("climb: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative workers), it will be recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Rule decides which neighbor steps are allowed.
	Rule heightmap.Rule

	// Workers bounds the concurrent searches run by BestPath.
	// Values 0 and 1 run sequentially.
	Workers int

	// MaxSteps, if > 0, stops expanding cells at this distance.
	// A value of 0 disables the limit.
	MaxSteps int

	// Logger receives diagnostic records.
	Logger *slog.Logger

	// Trace emits a debug record for every dequeued cell.
	Trace bool

	// OnEnqueue is called when a cell is enqueued, before visiting.
	OnEnqueue func(p heightmap.Position, steps int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p heightmap.Position, steps int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(p heightmap.Position, steps int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - heightmap.ClimbRule
//   - sequential BestPath, no step limit
//   - slog.Default() without tracing
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Rule:      heightmap.ClimbRule,
		Workers:   1,
		MaxSteps:  0,
		Logger:    slog.Default(),
		Trace:     false,
		OnEnqueue: func(heightmap.Position, int) {},
		OnDequeue: func(heightmap.Position, int) {},
		OnVisit:   func(heightmap.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRule replaces the reachability predicate.
func WithRule(rule heightmap.Rule) Option {
	return func(o *Options) {
		if rule != nil {
			o.Rule = rule
		}
	}
}

// WithWorkers sets how many searches BestPath may run at once.
//
//	n > 1: bounded parallel fan-out
//	n == 0 or 1: sequential
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = max(n, 1)
	}
}

// WithMaxSteps stops expanding cells once they are d steps from the start.
//
//	d > 0: limit to d steps
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxSteps(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxSteps = d
	}
}

// WithLogger sets the logger for diagnostic records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTrace toggles per-cell debug records.
func WithTrace(on bool) Option {
	return func(o *Options) {
		o.Trace = on
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p heightmap.Position, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p heightmap.Position, steps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(p heightmap.Position, steps int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traced search:
//   - Start: the origin of the search.
//   - Steps: distance to the goal, or Unreachable.
//   - Found: whether the goal was dequeued.
//   - Order: cells in dequeue sequence.
//   - Parent: predecessor of each enqueued cell in the search tree.
type Result struct {
	Start  heightmap.Position
	Steps  int
	Found  bool
	Order  []heightmap.Position
	Parent map[heightmap.Position]heightmap.Position
}

// PathTo reconstructs the route from Start to dest, both included.
// Returns an error if dest was never reached.
func (r *Result) PathTo(dest heightmap.Position) ([]heightmap.Position, error) {
	if _, ok := r.Parent[dest]; !ok && dest != r.Start {
		return nil, fmt.Errorf("climb: no path to %v", dest)
	}
	// build reversed path
	path := []heightmap.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
