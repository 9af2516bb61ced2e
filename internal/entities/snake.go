package entities

import "github.com/gammazero/deque"

// Snake is an ordered body with the head at index 0.
type Snake struct {
	body deque.Deque[Point]
}

func NewSnake(segments ...Point) *Snake {
	s := &Snake{}
	for _, p := range segments {
		s.body.PushBack(p)
	}
	return s
}

func (s *Snake) Head() Point {
	return s.body.Front()
}

func (s *Snake) Tail() Point {
	return s.body.Back()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// Advance prepends head and drops the tail unless grow is set.
func (s *Snake) Advance(head Point, grow bool) {
	s.body.PushFront(head)
	if !grow {
		s.body.PopBack()
	}
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Point {
	out := make([]Point, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}
