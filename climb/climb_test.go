package climb_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

const sample = `
Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

// unreachableFromStart walls S in with a 'z' while an 'a' further right
// climbs a-b-…-y straight into E (25 steps).
const unreachableFromStart = "Szabcdefghijklmnopqrstuvwxy" + "E"

// ClimbSuite exercises the search engine under various scenarios.
type ClimbSuite struct {
	suite.Suite
	grid *heightmap.Grid
}

func (s *ClimbSuite) SetupTest() {
	g, err := heightmap.Parse(sample)
	s.Require().NoError(err)
	s.grid = g
}

func (s *ClimbSuite) engine(opts ...climb.Option) *climb.Engine {
	e, err := climb.New(s.grid, opts...)
	s.Require().NoError(err)
	return e
}

// TestSample verifies the reference answers for the 5×8 sample.
func (s *ClimbSuite) TestSample() {
	e := s.engine()
	steps, err := e.Search()
	s.Require().NoError(err)
	s.Equal(31, steps)

	best, err := e.BestPath()
	s.Require().NoError(err)
	s.Equal(29, best)
}

// TestGoalToItself verifies a zero-length search from the goal.
func (s *ClimbSuite) TestGoalToItself() {
	steps, err := s.engine().SearchFrom(s.grid.End())
	s.Require().NoError(err)
	s.Equal(0, steps)
}

// TestBestPathNotWorse checks that the designated start is among the candidates.
func (s *ClimbSuite) TestBestPathNotWorse() {
	e := s.engine()
	from, err := e.Search()
	s.Require().NoError(err)
	best, err := e.BestPath()
	s.Require().NoError(err)
	s.LessOrEqual(best, from)
}

// TestTighterRule ensures a stricter rule never shortens the route.
func (s *ClimbSuite) TestTighterRule() {
	base, err := s.engine().Search()
	s.Require().NoError(err)

	rules := map[string]heightmap.Rule{
		"NoDeepDescent": func(from, to heightmap.Elevation) bool {
			return heightmap.ClimbRule(from, to) && int(from)-int(to) <= 2
		},
		"FlatOrUp": func(from, to heightmap.Elevation) bool {
			return to == from || to == from+1
		},
		"NoClimb": func(from, to heightmap.Elevation) bool { return to <= from },
	}
	for name, rule := range rules {
		steps, err := s.engine(climb.WithRule(rule)).Search()
		s.Require().NoError(err, name)
		s.GreaterOrEqual(steps, base, name)
	}
}

// TestDeterministicReparse verifies identical results from two parses.
func (s *ClimbSuite) TestDeterministicReparse() {
	other, err := heightmap.Parse(sample)
	s.Require().NoError(err)
	e2, err := climb.New(other)
	s.Require().NoError(err)
	e1 := s.engine()

	a1, _ := e1.Search()
	a2, _ := e2.Search()
	b1, _ := e1.BestPath()
	b2, _ := e2.BestPath()
	s.Equal(a1, a2)
	s.Equal(b1, b2)
}

// TestParallelMatchesSequential runs BestPath with several worker counts.
func (s *ClimbSuite) TestParallelMatchesSequential() {
	for _, n := range []int{0, 1, 2, 4, 16} {
		best, err := s.engine(climb.WithWorkers(n)).BestPath()
		s.Require().NoError(err)
		s.Equal(29, best, "workers=%d", n)
	}
}

// TestMaxSteps limits expansion below and exactly at the true distance.
func (s *ClimbSuite) TestMaxSteps() {
	short, err := s.engine(climb.WithMaxSteps(10)).Search()
	s.Require().NoError(err)
	s.Equal(climb.Unreachable, short)

	exact, err := s.engine(climb.WithMaxSteps(31)).Search()
	s.Require().NoError(err)
	s.Equal(31, exact)
}

// TestTracePath rebuilds the route and checks every step obeys the rule.
func (s *ClimbSuite) TestTracePath() {
	res, err := s.engine().Trace(s.grid.Start())
	s.Require().NoError(err)
	s.True(res.Found)
	s.Equal(31, res.Steps)
	s.Equal(s.grid.Start(), res.Order[0])
	s.Equal(s.grid.End(), res.Order[len(res.Order)-1])

	path, err := res.PathTo(s.grid.End())
	s.Require().NoError(err)
	s.Len(path, 32)
	s.Equal(s.grid.Start(), path[0])
	s.Equal(s.grid.End(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		dist := abs(prev.Row-cur.Row) + abs(prev.Col-cur.Col)
		s.Equal(1, dist, "step %d: %v -> %v", i, prev, cur)
		s.True(heightmap.ClimbRule(s.grid.Get(prev), s.grid.Get(cur)), "step %d climbs too steeply", i)
	}

	self, err := res.PathTo(s.grid.Start())
	s.Require().NoError(err)
	s.Equal([]heightmap.Position{s.grid.Start()}, self)
}

// TestHooks asserts that hooks fire in the expected sequence and count.
func (s *ClimbSuite) TestHooks() {
	g, err := heightmap.New([][]heightmap.Elevation{{0, 1, 2}},
		heightmap.Position{}, heightmap.Position{Col: 2})
	s.Require().NoError(err)

	var enq, deq, vis []string
	entry := func(p heightmap.Position, d int) string { return p.String() + "@" + strconv.Itoa(d) }
	e, err := climb.New(g,
		climb.WithOnEnqueue(func(p heightmap.Position, d int) { enq = append(enq, entry(p, d)) }),
		climb.WithOnDequeue(func(p heightmap.Position, d int) { deq = append(deq, entry(p, d)) }),
		climb.WithOnVisit(func(p heightmap.Position, d int) error { vis = append(vis, entry(p, d)); return nil }),
	)
	s.Require().NoError(err)

	steps, err := e.Search()
	s.Require().NoError(err)
	s.Equal(2, steps)

	want := []string{"(0,0)@0", "(0,1)@1", "(0,2)@2"}
	s.Equal(want, enq)
	s.Equal(want, deq)
	s.Equal(want, vis)
}

// TestOnVisitAbort verifies a hook error stops the search and is wrapped.
func (s *ClimbSuite) TestOnVisitAbort() {
	stop := errors.New("stop here")
	e := s.engine(climb.WithOnVisit(func(_ heightmap.Position, d int) error {
		if d == 3 {
			return stop
		}
		return nil
	}))
	steps, err := e.Search()
	s.ErrorIs(err, stop)
	s.Equal(climb.Unreachable, steps)

	_, err = s.engine(climb.WithWorkers(3), climb.WithOnVisit(func(heightmap.Position, int) error {
		return stop
	})).BestPath()
	s.ErrorIs(err, stop)
}

// TestCancellation verifies that a cancelled context halts every entry point.
func (s *ClimbSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := s.engine(climb.WithContext(ctx)).Search()
	s.ErrorIs(err, context.Canceled)
	_, err = s.engine(climb.WithContext(ctx)).BestPath()
	s.ErrorIs(err, context.Canceled)
	_, err = s.engine(climb.WithContext(ctx), climb.WithWorkers(4)).BestPath()
	s.ErrorIs(err, context.Canceled)
}

// TestTraceLogging checks that WithTrace emits one debug record per dequeue.
func (s *ClimbSuite) TestTraceLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := s.engine(climb.WithLogger(logger), climb.WithTrace(true)).Trace(s.grid.Start())
	s.Require().NoError(err)
	s.Equal(len(res.Order), strings.Count(buf.String(), "climb: dequeue"))

	buf.Reset()
	_, err = s.engine(climb.WithLogger(logger)).Search()
	s.Require().NoError(err)
	s.NotContains(buf.String(), "climb: dequeue")
}

func TestClimbSuite(t *testing.T) {
	suite.Run(t, new(ClimbSuite))
}

// TestNew_Errors verifies that invalid inputs and options are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := climb.New(nil)
	require.ErrorIs(t, err, climb.ErrGridNil)

	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	_, err = climb.New(g, climb.WithWorkers(-1))
	require.ErrorIs(t, err, climb.ErrOptionViolation)
	_, err = climb.New(g, climb.WithMaxSteps(-2))
	require.ErrorIs(t, err, climb.ErrOptionViolation)
}

// TestSearchFrom_OutOfBounds rejects starts outside the grid.
func TestSearchFrom_OutOfBounds(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	e, err := climb.New(g)
	require.NoError(t, err)

	_, err = e.SearchFrom(heightmap.Position{Row: -1})
	require.ErrorIs(t, err, climb.ErrStartOutOfBounds)
	_, err = e.Trace(heightmap.Position{Row: 5})
	require.ErrorIs(t, err, climb.ErrStartOutOfBounds)
}

// TestSingleCell covers a 1×1 grid whose only cell is both start and end.
func TestSingleCell(t *testing.T) {
	g, err := heightmap.New([][]heightmap.Elevation{{0}}, heightmap.Position{}, heightmap.Position{})
	require.NoError(t, err)
	e, err := climb.New(g)
	require.NoError(t, err)

	steps, err := e.Search()
	require.NoError(t, err)
	require.Equal(t, 0, steps)

	best, err := e.BestPath()
	require.NoError(t, err)
	require.Equal(t, 0, best)
}

// TestUnreachable ensures the sentinel is reported for a walled-in start and
// never wins the BestPath minimum over a start that does reach the goal.
func TestUnreachable(t *testing.T) {
	g, err := heightmap.Parse(unreachableFromStart)
	require.NoError(t, err)

	for _, workers := range []int{1, 3} {
		e, err := climb.New(g, climb.WithWorkers(workers))
		require.NoError(t, err)

		steps, err := e.Search()
		require.NoError(t, err)
		require.Equal(t, climb.Unreachable, steps)

		best, err := e.BestPath()
		require.NoError(t, err)
		require.Equal(t, 25, best, "workers=%d", workers)
	}

	e, err := climb.New(g)
	require.NoError(t, err)
	res, err := e.Trace(g.Start())
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, climb.Unreachable, res.Steps)
	_, err = res.PathTo(g.End())
	require.Error(t, err)
}

// TestNoReachableTrailhead reports Unreachable when no lowest cell reaches the goal.
func TestNoReachableTrailhead(t *testing.T) {
	g, err := heightmap.Parse("SbcE")
	require.NoError(t, err)
	e, err := climb.New(g)
	require.NoError(t, err)

	best, err := e.BestPath()
	require.NoError(t, err)
	require.Equal(t, climb.Unreachable, best)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
