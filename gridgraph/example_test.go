package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/gridgraph"
)

// ExampleGridGraph_ConnectedComponents lists the cells of the cross-shaped
// cube net layout in discovery order.
//
//	. . 1 .
//	2 3 4 .
//	. . 5 6
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 0, 1, 0},
		{2, 3, 4, 0},
		{0, 0, 5, 6},
	})

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for _, idx := range comps[0] {
		x, y := gg.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()

	// Output:
	// components: 1
	//  (2,0) (2,1) (2,2) (1,1) (3,2) (0,1)
}

// ExampleGridGraph_ToCoreGraph exports the same layout as a graph of faces.
func ExampleGridGraph_ToCoreGraph() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 0, 1, 0},
		{2, 3, 4, 0},
		{0, 0, 5, 6},
	})
	g, _ := gg.ToCoreGraph()

	fmt.Println("vertices:", g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s\n", e.From, e.To)
	}

	// Output:
	// vertices: [1 2 3 4 5 6]
	// 1-4
	// 2-3
	// 3-4
	// 4-5
	// 5-6
}
