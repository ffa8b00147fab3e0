// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/roadnet/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on distinct
// pairs are safe and every road is present afterwards.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("Hub", fmt.Sprintf("V%d", id), float64(id+1))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("Hub")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadersAndCloners mixes readers, cloners and a writer.
func TestConcurrentReadersAndCloners(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = g.AddEdge("A", fmt.Sprintf("N%d", i), 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = g.Snapshot()
			_, _ = g.Neighbors("A")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			_ = g.Clone()
		}
	}()
	wg.Wait()

	require.Equal(t, 101, g.EdgeCount())
}
