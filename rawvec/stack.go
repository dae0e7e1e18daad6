package rawvec

// Stack is a LIFO adapter over a Vector. Push, Pop and Peek map to the
// back-of-vector operations; every failure signal passes through from
// the underlying vector unchanged.
type Stack struct {
	vec *Vector
}

// NewStack creates a stack holding records of objectSize bytes each. It
// accepts the same options as New.
func NewStack(objectSize int, optFns ...Option) (*Stack, error) {
	vec, err := New(objectSize, optFns...)
	if err != nil {
		return nil, err
	}
	return &Stack{vec: vec}, nil
}

// Push appends a copy of obj to the top of the stack.
func (s *Stack) Push(obj []byte) bool {
	return s.vec.PushBack(obj)
}

// Pop copies the top element into dst and drops it. Ownership of any
// nested resource transfers to dst; the deep-release hook is not invoked.
func (s *Stack) Pop(dst []byte) bool {
	return s.vec.PopBack(dst)
}

// Peek returns the top element's storage without copying, or nil if the
// stack is empty. The slice is invalidated by any subsequent mutation.
func (s *Stack) Peek() []byte {
	return s.vec.GetBack()
}

// Empty reports whether the stack holds no elements.
func (s *Stack) Empty() bool {
	return s.vec.Empty()
}

// Len returns the number of stacked elements.
func (s *Stack) Len() int {
	return s.vec.Count()
}

// Release resets and deallocates the underlying vector.
func (s *Stack) Release() {
	if s == nil {
		return
	}
	s.vec.Release()
}

// Copy produces an independent stack by copying the underlying vector,
// with the same shrink-to-fit and per-element degrade semantics.
func (s *Stack) Copy(shrinkToFit bool) (*Stack, int) {
	clone, degraded := s.vec.Copy(shrinkToFit)
	return &Stack{vec: clone}, degraded
}
