package util

// Stack is a LIFO over a slice. The zero value is an empty stack.
type Stack[A any] struct {
	items []A
}

func NewStack[A any](items ...A) *Stack[A] {
	s := &Stack[A]{}
	for _, item := range items {
		s.Push(item)
	}
	return s
}

func (s *Stack[A]) Push(v A) {
	s.items = append(s.items, v)
}

func (s *Stack[A]) Pop() (ret A, ok bool) {
	if len(s.items) == 0 {
		return ret, false
	}
	last := len(s.items) - 1
	ret = s.items[last]
	s.items = s.items[:last]
	return ret, true
}

func (s *Stack[A]) Len() int {
	return len(s.items)
}
