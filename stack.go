package castor

// Stack is a LIFO adapter over a Vector. Push, Pop and Peek map to the
// back-of-vector operations; every failure signal passes through from
// the underlying vector unchanged.
type Stack[T any] struct {
	vec *Vector[T]
}

// NewStack creates a stack of T. It accepts the same options as New.
func NewStack[T any](optFns ...Option[T]) (*Stack[T], error) {
	vec, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{vec: vec}, nil
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.vec.PushBack(value)
}

// Pop removes and returns the top element. Ownership of any nested
// resource transfers to the caller; the deep-release hook is not
// invoked.
func (s *Stack[T]) Pop() (value T, ok bool) {
	return s.vec.PopBack()
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	return s.vec.GetBack()
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.vec.Empty()
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	return s.vec.Count()
}

// Release resets and deallocates the underlying vector.
func (s *Stack[T]) Release() {
	if s == nil {
		return
	}
	s.vec.Release()
}

// Copy produces an independent stack by copying the underlying vector,
// with the same shrink-to-fit and per-element degrade semantics.
func (s *Stack[T]) Copy(shrinkToFit bool) (*Stack[T], int) {
	clone, degraded := s.vec.Copy(shrinkToFit)
	return &Stack[T]{vec: clone}, degraded
}
