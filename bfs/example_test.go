package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/core"
)

// ExampleComponents splits a network with an isolated district.
func ExampleComponents() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "1", 6)
	_ = g.AddEdge("1", "2", 3)
	_ = g.AddEdge("7", "8", 2)

	for _, comp := range bfs.Components(g) {
		fmt.Println(comp)
	}
	// Output:
	// [0 1 2]
	// [7 8]
}

// ExampleBFS lists junctions in hop order on a 2×3 block grid.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if j+1 < 3 {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 2 {
				_ = g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}
	res, _ := bfs.BFS(g, "0_0")
	fmt.Println(res.Order)
	// Output: [0_0 0_1 1_0 0_2 1_1 1_2]
}
