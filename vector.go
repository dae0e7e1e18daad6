package castor

import "fmt"

// DefaultCapacity is the slot count used by the first growth of a
// container that was constructed without an explicit capacity.
const DefaultCapacity = 16

// ElementOps supplies optional element-level deep-copy and deep-release
// hooks. Either field may be nil independently; a nil field disables that
// hook. The container borrows the ElementOps value and never copies it.
type ElementOps[T any] struct {
	// Copy deep-copies the element at src into dst. It reports whether
	// the copy succeeded; on failure the destination element is left as
	// the zero value of T.
	Copy func(dst, src *T) bool

	// Release frees any resources the element at elem indirectly
	// references. The element slot itself still belongs to the container.
	Release func(elem *T)
}

// Vector is a growable array of elements of type T stored in one
// exclusively owned slice. Storage is managed explicitly: the slice
// length is the capacity and a separate count tracks live elements, so
// the doubling growth policy is independent of append semantics.
//
// Invariants: 0 <= count <= capacity, and the slice is nil exactly when
// the capacity is 0.
type Vector[T any] struct {
	items []T
	count int
	ops   *ElementOps[T]
}

// New creates a vector of T.
func New[T any](optFns ...Option[T]) (*Vector[T], error) {
	var opts options[T]
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, opts.capacity)
	}

	v := &Vector[T]{ops: opts.ops}
	if opts.capacity > 0 {
		v.items = make([]T, opts.capacity)
	}

	return v, nil
}

// Capacity returns the number of element slots currently allocated.
func (v *Vector[T]) Capacity() int { return len(v.items) }

// Count returns the number of live elements.
func (v *Vector[T]) Count() int { return v.count }

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool { return v.count == 0 }

// Get returns the value of element i. ok is false if i is out of range.
func (v *Vector[T]) Get(i int) (value T, ok bool) {
	if i < 0 || i >= v.count {
		return value, false
	}
	return v.items[i], true
}

// GetFront returns the first live element's value, or ok=false if empty.
func (v *Vector[T]) GetFront() (value T, ok bool) {
	if v.count == 0 {
		return value, false
	}
	return v.items[0], true
}

// GetBack returns the last live element's value, or ok=false if empty.
func (v *Vector[T]) GetBack() (value T, ok bool) {
	if v.count == 0 {
		return value, false
	}
	return v.items[v.count-1], true
}

// Grow adds n element slots. The new capacity is capacity+n, except that
// a target of 0 defaults to DefaultCapacity. Negative n is ignored.
func (v *Vector[T]) Grow(n int) {
	if n < 0 {
		return
	}

	newCap := len(v.items) + n
	if newCap == 0 {
		newCap = DefaultCapacity
	}

	if newCap == len(v.items) {
		return
	}

	next := make([]T, newCap)
	copy(next, v.items[:v.count])
	v.items = next
}

// growIfFull doubles the capacity when no free slot remains.
func (v *Vector[T]) growIfFull() {
	if v.count == len(v.items) {
		v.Grow(len(v.items))
	}
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) {
	v.growIfFull()
	v.items[v.count] = value
	v.count++
}

// PushFront inserts value before the first element, shifting all existing
// elements one slot toward higher indices.
func (v *Vector[T]) PushFront(value T) {
	v.growIfFull()
	copy(v.items[1:v.count+1], v.items[:v.count])
	v.items[0] = value
	v.count++
}

// Insert places value at index i, shifting elements [i, count) one slot
// right. The index must address a live element; appending is PushBack's
// job.
func (v *Vector[T]) Insert(i int, value T) bool {
	if i < 0 || i >= v.count {
		return false
	}

	v.growIfFull()
	copy(v.items[i+1:v.count+1], v.items[i:v.count])
	v.items[i] = value
	v.count++

	return true
}

// Set overwrites element i with value. The old element is not
// deep-released and the new one is not deep-copied; the caller owns any
// resource implications of discarding the old contents.
func (v *Vector[T]) Set(i int, value T) bool {
	if i < 0 || i >= v.count {
		return false
	}

	v.items[i] = value

	return true
}

func (v *Vector[T]) release(i int) {
	if v.ops != nil && v.ops.Release != nil {
		v.ops.Release(&v.items[i])
	}
}

// clearSlot zeroes a vacated slot so the vector does not pin garbage.
func (v *Vector[T]) clearSlot(i int) {
	var zero T
	v.items[i] = zero
}

// DiscardBack drops the last element, deep-releasing it first.
func (v *Vector[T]) DiscardBack() bool {
	if v.count == 0 {
		return false
	}

	v.count--
	v.release(v.count)
	v.clearSlot(v.count)

	return true
}

// DiscardFront drops the first element, deep-releasing it first, then
// shifts the remaining elements one slot left.
func (v *Vector[T]) DiscardFront() bool {
	if v.count == 0 {
		return false
	}

	v.release(0)
	copy(v.items, v.items[1:v.count])
	v.count--
	v.clearSlot(v.count)

	return true
}

// Discard drops element i, deep-releasing it first, then closes the gap.
func (v *Vector[T]) Discard(i int) bool {
	if i < 0 || i >= v.count {
		return false
	}

	v.release(i)
	copy(v.items[i:], v.items[i+1:v.count])
	v.count--
	v.clearSlot(v.count)

	return true
}

// PopBack removes and returns the last element. The deep-release hook is
// NOT invoked: ownership of any nested resource transfers to the caller.
func (v *Vector[T]) PopBack() (value T, ok bool) {
	if v.count == 0 {
		return value, false
	}

	v.count--
	value = v.items[v.count]
	v.clearSlot(v.count)

	return value, true
}

// PopFront removes and returns the first element without deep-release,
// closing the gap.
func (v *Vector[T]) PopFront() (value T, ok bool) {
	if v.count == 0 {
		return value, false
	}

	value = v.items[0]
	copy(v.items, v.items[1:v.count])
	v.count--
	v.clearSlot(v.count)

	return value, true
}

// Pop removes and returns element i without deep-release, closing the
// gap.
func (v *Vector[T]) Pop(i int) (value T, ok bool) {
	if i < 0 || i >= v.count {
		return value, false
	}

	value = v.items[i]
	copy(v.items[i:], v.items[i+1:v.count])
	v.count--
	v.clearSlot(v.count)

	return value, true
}

// Walk invokes fn once per live element in ascending index order with
// that element's address, so fn may mutate the element in place.
// Mutating the vector itself from fn is undefined.
func (v *Vector[T]) Walk(fn func(elem *T)) {
	for i := 0; i < v.count; i++ {
		fn(&v.items[i])
	}
}

// Reset deep-releases every live element in ascending order and sets the
// count to zero. The backing storage is kept; vacated slots are zeroed.
func (v *Vector[T]) Reset() {
	if v.count == 0 {
		return
	}

	if v.ops != nil && v.ops.Release != nil {
		v.Walk(v.ops.Release)
	}

	clear(v.items[:v.count])
	v.count = 0
}

// Release resets the vector and drops the backing storage, returning it
// to the unallocated state. It is idempotent and safe on a nil receiver.
func (v *Vector[T]) Release() {
	if v == nil || v.items == nil {
		return
	}

	v.Reset()
	v.items = nil
}

// Copy produces an independent vector with the same ElementOps
// reference. The clone's capacity is count when shrinkToFit, else the
// source capacity; copying an empty vector with shrinkToFit yields an
// unallocated clone.
//
// Without a deep-copy hook the live elements are value-copied. With one,
// the hook runs once per element; each element whose hook reports
// failure is left as the zero value of T and counted in degraded, but
// the copy as a whole still succeeds.
func (v *Vector[T]) Copy(shrinkToFit bool) (clone *Vector[T], degraded int) {
	capacity := len(v.items)
	if shrinkToFit {
		capacity = v.count
	}

	clone = &Vector[T]{ops: v.ops}
	if capacity > 0 {
		clone.items = make([]T, capacity)
	}
	clone.count = v.count

	if v.count == 0 {
		return clone, 0
	}

	if v.ops == nil || v.ops.Copy == nil {
		copy(clone.items, v.items[:v.count])
		return clone, 0
	}

	for i := 0; i < v.count; i++ {
		if !v.ops.Copy(&clone.items[i], &v.items[i]) {
			clone.clearSlot(i)
			degraded++
		}
	}

	return clone, degraded
}
