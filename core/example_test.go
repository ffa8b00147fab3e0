package core_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/core"
)

// ExampleGraph builds the five-intersection network used throughout the
// planner tests and prints its canonical edge list.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddEdge("0", "1", 6)
	_ = g.AddEdge("0", "4", 9)
	_ = g.AddEdge("1", "3", 11)
	_ = g.AddEdge("2", "4", 10)
	_ = g.AddEdge("4", "3", 7) // stored under the canonical key 3-4

	for _, r := range g.Snapshot() {
		fmt.Printf("%s-%s w=%g\n", r.From, r.To, r.Weight)
	}
	// Output:
	// 0-1 w=6
	// 0-4 w=9
	// 1-3 w=11
	// 2-4 w=10
	// 3-4 w=7
}
