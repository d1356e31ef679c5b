package gridastar

import (
	"fmt"
	"math"
)

// Coord identifies a grid cell. X ranges over rows and Y over columns.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance returns the Euclidean distance between two cells.
func (c Coord) Distance(other Coord) float64 {
	dx := float64(c.X - other.X)
	dy := float64(c.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// IsDiagonalTo reports whether other differs from c by exactly one step on
// both axes.
func (c Coord) IsDiagonalTo(other Coord) bool {
	return absInt(c.X-other.X) == 1 && absInt(c.Y-other.Y) == 1
}

// neighborOffsets lists the 8-neighbourhood; orthogonal offsets come first.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
