// Package climb finds the fewest-step route across a heightmap.Grid toward
// its end cell, using breadth-first search gated by a pluggable rule.
//
// What
//
//   - Engine wraps a read-only Grid and a set of Options.
//   - SearchFrom(start): shortest step count from start to Grid.End().
//   - Search(): SearchFrom(Grid.Start()).
//   - BestPath(): minimum over every lowest-elevation cell, optionally
//     fanned out over a bounded errgroup (WithWorkers).
//   - Trace(start): the same search keeping dequeue order and parent links;
//     Result.PathTo rebuilds the route.
//
// Unreachable goals
//
//	A goal that cannot be reached is not an error. The search reports
//	Unreachable (math.MaxInt), which acts as infinity when results are
//	compared or reduced with min. Callers that present results should test
//	for it explicitly rather than print it.
//
// State per search
//
//	Initialized → Exploring (dequeue/expand) → Found | Exhausted.
//	Each call owns its frontier and visited set, so concurrent calls share
//	only the immutable Grid.
//
// Complexity (N = Rows × Cols)
//
//   - SearchFrom, Trace: O(N) time and memory.
//   - BestPath:          O(N × L) time for L lowest cells; O(N × Workers) memory.
//
// Options
//
//   - DefaultOptions(): background Context, ClimbRule, sequential, no limit,
//     slog.Default() without tracing, no-op hooks.
//   - WithContext(ctx), WithRule(rule), WithWorkers(n), WithMaxSteps(d),
//     WithLogger(l), WithTrace(on), WithOnEnqueue, WithOnDequeue, WithOnVisit.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrOptionViolation    for negative Workers or MaxSteps.
//   - ErrStartOutOfBounds   if the start lies outside the grid.
//   - Context errors and wrapped OnVisit hook errors.
package climb
