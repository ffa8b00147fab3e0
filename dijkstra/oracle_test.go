package dijkstra_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOracle_Validation(t *testing.T) {
	_, err := dijkstra.NewOracle(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.NewOracle(core.NewGraph(), dijkstra.WithCacheSize(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadCacheSize)
}

func TestOracle_PathLengthAndPath(t *testing.T) {
	g := buildTriangle(t)
	o, err := dijkstra.NewOracle(g)
	require.NoError(t, err)

	assert.Equal(t, 3.0, o.PathLength("A", "C"))
	assert.Equal(t, 3.0, o.PathLength("C", "A"))
	assert.Equal(t, 0.0, o.PathLength("B", "B"))
	assert.True(t, dijkstra.IsUnreachable(o.PathLength("A", "missing")))
	assert.True(t, dijkstra.IsUnreachable(o.PathLength("missing", "A")))

	path, ok := o.Path("A", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	for i := 0; i+1 < len(path); i++ {
		assert.True(t, g.HasEdge(path[i], path[i+1]), "consecutive path vertices must be adjacent")
	}

	path, ok = o.Path("B", "B")
	require.True(t, ok)
	assert.Equal(t, []string{"B"}, path)
}

func TestOracle_UnreachablePath(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.AddEdge("X", "Y", 1))
	o, err := dijkstra.NewOracle(g)
	require.NoError(t, err)

	path, ok := o.Path("A", "Y")
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.True(t, dijkstra.IsUnreachable(o.PathLength("Y", "C")))
}

func TestOracle_MemoAndInvalidationOnMutation(t *testing.T) {
	g := buildTriangle(t)
	o, err := dijkstra.NewOracle(g, dijkstra.WithCacheSize(8))
	require.NoError(t, err)

	assert.Equal(t, 3.0, o.PathLength("A", "C"))
	assert.Equal(t, 1.0, o.PathLength("A", "B"))
	hits, misses, cached := o.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 1, cached)

	// A cheaper road changes the topology; the stale tree must not be served.
	require.NoError(t, g.AddEdge("A", "C", 2.4))
	assert.Equal(t, 2.4, o.PathLength("A", "C"))

	o.Invalidate()
	_, _, cached = o.Stats()
	assert.Zero(t, cached)
}

func TestOracle_ConcurrentQueries(t *testing.T) {
	g := buildTriangle(t)
	o, err := dijkstra.NewOracle(g, dijkstra.WithCacheSize(2))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan float64, 300)
	for i := 0; i < 100; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); results <- o.PathLength("A", "C") }()
		go func() { defer wg.Done(); results <- o.PathLength("B", "A") }()
		go func() { defer wg.Done(); results <- o.PathLength("C", "B") }()
	}
	wg.Wait()
	close(results)
	for d := range results {
		assert.Contains(t, []float64{3, 1, 2}, d)
	}
}
