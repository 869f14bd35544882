package core

import (
	"errors"
	"fmt"
	"strings"
)

// StatusRow is the screen row reserved for score and help text
const StatusRow = 0

// Boundary selects what happens when the head crosses an arena edge
type Boundary uint8

const (
	BoundaryWrap  Boundary = iota // Toroidal, re-enter on the opposite edge
	BoundarySolid                 // Edges are walls, crossing one ends the game
)

var (
	ErrArenaTooSmall   = errors.New("arena too small")
	ErrUnknownBoundary = errors.New("unknown boundary mode")
)

// ParseBoundary resolves a config name into a Boundary
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wrap", "toroidal":
		return BoundaryWrap, nil
	case "solid", "wall", "walls":
		return BoundarySolid, nil
	default:
		return BoundaryWrap, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
	}
}

func (b Boundary) String() string {
	if b == BoundarySolid {
		return "solid"
	}
	return "wrap"
}

// Arena is the fixed play field derived from the terminal size
// Playable cells are [0,Width) x [1,Height), row 0 belongs to the status line
type Arena struct {
	Width, Height int
	Boundary      Boundary
}

// NewArena validates the dimensions, at least one playable row is required
func NewArena(width, height int, boundary Boundary) (Arena, error) {
	if width < 1 || height < StatusRow+2 {
		return Arena{}, fmt.Errorf("%w: %dx%d", ErrArenaTooSmall, width, height)
	}
	return Arena{Width: width, Height: height, Boundary: boundary}, nil
}

// Rows returns the number of playable rows
func (a Arena) Rows() int {
	return a.Height - StatusRow - 1
}

// Contains reports whether p lies inside the playable area
func (a Arena) Contains(p Point) bool {
	return p.X >= 0 && p.X < a.Width && p.Y > StatusRow && p.Y < a.Height
}

// Center returns the starting cell for a new snake
func (a Arena) Center() Point {
	p := Point{X: a.Width/2 - 1, Y: a.Height/2 - 1}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y <= StatusRow {
		p.Y = StatusRow + 1
	}
	return p
}

// Step moves p one cell in direction d
// Wrap mode always succeeds; solid mode returns false when the step leaves the playable area
func (a Arena) Step(p Point, d Direction) (Point, bool) {
	dx, dy := d.Delta()
	next := p.Add(dx, dy)

	if a.Boundary == BoundarySolid {
		if !a.Contains(next) {
			return p, false
		}
		return next, true
	}

	next.X = wrap(next.X, a.Width)
	next.Y = StatusRow + 1 + wrap(next.Y-StatusRow-1, a.Rows())
	return next, true
}

// wrap maps v into [0,n)
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
