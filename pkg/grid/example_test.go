package grid_test

import (
	"fmt"

	"github.com/echotab/echotab/pkg/grid"
)

func ExampleResolveMove() {
	cfg := grid.Config{Cols: 6}
	layout := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 2, H: 2},
		{ID: "b", X: 2, Y: 0, W: 2, H: 2},
	}

	// Same-size items trade places.
	for _, it := range grid.ResolveMove("a", 2, 0, layout, cfg) {
		fmt.Printf("%s at (%d,%d)\n", it.ID, it.X, it.Y)
	}
	// Output:
	// a at (2,0)
	// b at (0,0)
}

func ExampleSnapshot() {
	cfg := grid.Config{Cols: 4}
	layout := grid.Layout{
		{ID: "wide", X: 0, Y: 2, W: 4, H: 1},
		{ID: "p", X: 0, Y: 0, W: 1, H: 1},
		{ID: "q", X: 1, Y: 0, W: 1, H: 1},
	}

	snap := grid.BeginInteraction(layout, cfg)
	_ = snap.Preview("wide", grid.MoveTo(0, 1)) // pointer still moving
	res := snap.Apply("wide", grid.MoveTo(0, 0))

	fmt.Println(res.Outcome, res.Displaced)
	for _, it := range res.Layout {
		fmt.Printf("%s at (%d,%d)\n", it.ID, it.X, it.Y)
	}
	// Output:
	// pushed [p q]
	// wide at (0,0)
	// p at (0,1)
	// q at (1,1)
}

func ExampleFindFreePosition() {
	layout := grid.Layout{
		{ID: "a", X: 0, Y: 0, W: 1, H: 1},
		{ID: "b", X: 1, Y: 0, W: 1, H: 1},
	}
	fmt.Println(grid.FindFreePosition(layout, 1, 1, 6, 0))
	// Output:
	// {2 0}
}
