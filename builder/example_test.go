package builder_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/builder"
)

// ExampleScenario5 prints the reference network and its candidate roads.
func ExampleScenario5() {
	g, cands, _ := builder.Scenario5()
	for _, e := range g.Edges() {
		fmt.Printf("%s w=%g\n", e.Key, e.Weight)
	}
	fmt.Println(cands)
	// Output:
	// 0-1 w=6
	// 0-4 w=9
	// 1-3 w=11
	// 2-4 w=10
	// 3-4 w=7
	// [0-2 0-3 1-2 1-4 2-3]
}
