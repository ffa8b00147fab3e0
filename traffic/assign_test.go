package traffic_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/traffic"
)

func scenario(t *testing.T) *core.Graph {
	t.Helper()
	g, _, err := builder.Scenario5()
	require.NoError(t, err)

	return g
}

func TestAssign_Preconditions(t *testing.T) {
	ctx := context.Background()

	_, err := traffic.Assign(ctx, nil)
	assert.ErrorIs(t, err, traffic.ErrNilGraph)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("only"))
	_, err = traffic.Assign(ctx, g)
	assert.ErrorIs(t, err, traffic.ErrInsufficientNodes)

	g = scenario(t)
	_, err = traffic.Assign(ctx, g, traffic.WithAgents(0))
	assert.ErrorIs(t, err, traffic.ErrBadParameter)
	_, err = traffic.Assign(ctx, g, traffic.WithRounds(0))
	assert.ErrorIs(t, err, traffic.ErrBadParameter)
	_, err = traffic.Assign(ctx, g, traffic.WithRounds(1), traffic.WithUpdateInterval(-1))
	assert.ErrorIs(t, err, traffic.ErrBadParameter)

	other, err := dijkstra.NewOracle(scenario(t))
	require.NoError(t, err)
	_, err = traffic.Assign(ctx, g, traffic.WithRounds(1), traffic.WithOracle(other))
	assert.ErrorIs(t, err, traffic.ErrBadParameter)
}

func TestAssign_TotalEqualsSummedPathLengths(t *testing.T) {
	g := scenario(t)
	res, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(50), traffic.WithRounds(20), traffic.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, 20, res.Rounds)
	assert.Equal(t, 50*20, res.Trips, "connected network routes every trip")
	assert.Zero(t, res.Unreachable)
	assert.Equal(t, res.Hops, res.Table.Total())
	assert.Equal(t, res.Trips, res.Demand.Total())

	// Only existing roads carry load.
	for _, k := range res.Table.Keys() {
		assert.True(t, g.HasEdge(k.U, k.V), "load on non-road %s", k)
	}
	// Demand never records a self trip.
	for _, k := range res.Demand.Keys() {
		assert.NotEqual(t, k.U, k.V)
	}
}

func TestAssign_TwoJunctions(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("b", "a", 3))

	res, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(10), traffic.WithRounds(3), traffic.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 30, res.Table.Count("a", "b"))
	assert.Equal(t, 30, res.Table.Count("b", "a"))
	assert.Equal(t, 1, res.Table.Len())
	assert.Equal(t, 30, res.Demand.Count("a", "b"))
}

func TestAssign_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("x", "y", 1))

	res, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(40), traffic.WithRounds(5), traffic.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 200, res.Trips+res.Unreachable)
	assert.Positive(t, res.Unreachable)
	assert.Equal(t, res.Trips, res.Table.Count("a", "b")+res.Table.Count("x", "y"))
	assert.Zero(t, res.Demand.Count("a", "x"))
}

func TestAssign_IdleRoadsTracked(t *testing.T) {
	// a—c is never on a shortest path: a—b—c costs 2.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 1))
	require.NoError(t, g.AddEdge("a", "c", 100))

	res, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(10), traffic.WithRounds(4), traffic.WithSeed(1), traffic.WithHistory(2))
	require.NoError(t, err)

	assert.Zero(t, res.Table.Count("a", "c"))
	assert.Equal(t, g.EdgeCount(), res.Table.Len())
	assert.Contains(t, res.Table.Records(), traffic.Record{From: "a", To: "c", Count: 0})
	for _, snap := range res.History {
		assert.Len(t, snap.Counts, g.EdgeCount(), "iteration %d", snap.Iteration)
	}

	s := traffic.Summarize(res.Table)
	assert.Equal(t, 3, s.Roads)
	assert.Equal(t, float64(res.Hops), s.Total)
}

func TestAssign_Deterministic(t *testing.T) {
	run := func() *traffic.Result {
		res, err := traffic.Assign(context.Background(), scenario(t),
			traffic.WithAgents(30), traffic.WithRounds(10), traffic.WithSeed(11), traffic.WithHistory(5))
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.Table.Records(), b.Table.Records())
	assert.Equal(t, a.Demand.Records(), b.Demand.Records())
	assert.Equal(t, a.History, b.History)
}

func TestAssign_ProgressAndHistory(t *testing.T) {
	g := scenario(t)
	var got []traffic.Progress
	res, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(5), traffic.WithRounds(5), traffic.WithSeed(2),
		traffic.WithUpdateInterval(2), traffic.WithHistory(2),
		traffic.WithProgress(func(p traffic.Progress) { got = append(got, p) }))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 4, 5}, []int{got[0].Round, got[1].Round, got[2].Round})
	for _, p := range got {
		assert.Equal(t, 5, p.Total)
		require.NotEmpty(t, p.Path)
		for i := 0; i+1 < len(p.Path); i++ {
			assert.True(t, g.HasEdge(p.Path[i], p.Path[i+1]))
		}
	}

	require.Len(t, res.History, 2)
	assert.Equal(t, 2, res.History[0].Iteration)
	assert.Equal(t, 4, res.History[1].Iteration)
	last := 0
	for _, r := range res.History[1].Counts {
		last += r.Count
	}
	assert.LessOrEqual(t, last, res.Table.Total())

	// Interval 0 reports once, on completion.
	got = nil
	_, err = traffic.Assign(context.Background(), g,
		traffic.WithAgents(1), traffic.WithRounds(3), traffic.WithUpdateInterval(0),
		traffic.WithProgress(func(p traffic.Progress) { got = append(got, p) }))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Round)
}

func TestAssign_ProgressPathNilWithoutRoutedTrip(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	var got []traffic.Progress
	res, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(3), traffic.WithRounds(2), traffic.WithUpdateInterval(1),
		traffic.WithProgress(func(p traffic.Progress) { got = append(got, p) }))
	require.NoError(t, err)
	assert.Zero(t, res.Trips)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Nil(t, p.Path)
	}
}

func TestAssign_ProgressDoesNotAlterTable(t *testing.T) {
	g := scenario(t)
	quiet, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(20), traffic.WithRounds(8), traffic.WithSeed(5))
	require.NoError(t, err)
	noisy, err := traffic.Assign(context.Background(), g,
		traffic.WithAgents(20), traffic.WithRounds(8), traffic.WithSeed(5),
		traffic.WithUpdateInterval(1), traffic.WithProgress(func(traffic.Progress) {}))
	require.NoError(t, err)
	assert.Equal(t, quiet.Table.Records(), noisy.Table.Records())
}

func TestAssign_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := traffic.Assign(ctx, scenario(t), traffic.WithRounds(10))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestAssign_LogsCompletion(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	_, err := traffic.Assign(context.Background(), scenario(t),
		traffic.WithAgents(2), traffic.WithRounds(2), traffic.WithLogger(logger))
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "traffic assignment completed", hook.LastEntry().Message)
	assert.Equal(t, 2, hook.LastEntry().Data["rounds"])
}
