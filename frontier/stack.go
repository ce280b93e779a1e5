package frontier

import "image"

// Stack is a last-in-first-out frontier.
type Stack struct {
	items []image.Point
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Add pushes p on top.
func (s *Stack) Add(p image.Point) {
	s.items = append(s.items, p)
}

// Remove pops the top coordinate.
func (s *Stack) Remove() image.Point {
	if len(s.items) == 0 {
		panic("frontier: Remove on empty stack")
	}
	last := len(s.items) - 1
	p := s.items[last]
	s.items = s.items[:last]
	return p
}

// IsEmpty reports whether the stack holds nothing.
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the stack depth.
func (s *Stack) Len() int { return len(s.items) }
