package domain

import (
	"fmt"
)

type Coordinate struct {
	X int
	Y int
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String renders the coordinate 1-based, the way the player types it.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d, %d", c.X+1, c.Y+1)
}
