package engine

import (
	"github.com/gammazero/deque"
	"github.com/lixenwraith/vi-snake/core"
)

// Snake is the ordered body, head first
// Movement pushes a new head and drops the tail, so only the ends are touched per tick
type Snake struct {
	body deque.Deque[core.Point]
}

// NewSnake builds a snake from head-first segments, at least one is required
func NewSnake(head core.Point, tail ...core.Point) *Snake {
	s := &Snake{}
	s.body.PushBack(head)
	for _, p := range tail {
		s.body.PushBack(p)
	}
	return s
}

// Head returns segment 0
func (s *Snake) Head() core.Point {
	return s.body.Front()
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return s.body.Len()
}

// Segment returns the i-th segment counted from the head
func (s *Snake) Segment(i int) core.Point {
	return s.body.At(i)
}

// Segments returns a head-first copy of the body
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// Move steps the head one cell in d and drops the last segment, length is unchanged
// Returns the new head, or the current head and false when a solid edge blocks the step
func (s *Snake) Move(d core.Direction, arena core.Arena) (core.Point, bool) {
	if d == core.DirStopped {
		return s.Head(), true
	}

	next, ok := arena.Step(s.Head(), d)
	if !ok {
		return s.Head(), false
	}

	s.body.PushFront(next)
	s.body.PopBack()
	return next, true
}

// Grow appends a segment at p without dropping the tail
func (s *Snake) Grow(at core.Point) {
	s.body.PushBack(at)
}

// TailContains reports whether p matches any segment except the head
func (s *Snake) TailContains(p core.Point) bool {
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}
