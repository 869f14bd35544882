package core

import "fmt"

// Point is a cell coordinate on the terminal grid
type Point struct {
	X, Y int
}

// Add returns p translated by the given offsets
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
