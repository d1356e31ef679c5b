package gridastar_test

import (
	"fmt"

	"github.com/pdrpinto/gridastar"
)

// ExamplePathfinder_FindPath routes around a short wall on a 5×5 grid
// without corner cutting.
func ExamplePathfinder_FindPath() {
	p, _ := gridastar.New(5, 5)
	for y := 0; y < 4; y++ {
		_ = p.Block(gridastar.Coord{X: 2, Y: y})
	}
	_ = p.SetStart(gridastar.Coord{X: 0, Y: 0})
	_ = p.SetTarget(gridastar.Coord{X: 4, Y: 0})

	res, err := p.FindPath()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cost %.0f over %d cells\n", res.TotalCost, len(res.Path))
	// Output:
	// cost 12 over 13 cells
}

// ExamplePathfinder_FindPath_unreachable shows how a walled-off target is
// reported.
func ExamplePathfinder_FindPath_unreachable() {
	p, _ := gridastar.New(3, 3, gridastar.WithCutCorners(true))
	_ = p.Block(gridastar.Coord{X: 1, Y: 0})
	_ = p.Block(gridastar.Coord{X: 1, Y: 1})
	_ = p.Block(gridastar.Coord{X: 1, Y: 2})
	_ = p.SetStart(gridastar.Coord{X: 0, Y: 1})
	_ = p.SetTarget(gridastar.Coord{X: 2, Y: 1})

	_, err := p.FindPath()
	fmt.Println(err, p.Outcome())
	// Output:
	// gridastar: no path found unreachable
}
