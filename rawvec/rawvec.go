package rawvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidObjectSize is returned when the per-element byte width is not positive.
	ErrInvalidObjectSize = errors.New("object size must be positive")

	// ErrInvalidCapacity is returned when a negative initial capacity is requested.
	ErrInvalidCapacity = errors.New("capacity must not be negative")
)

// DefaultCapacity is the slot count used by the first growth of a vector
// that was constructed without an explicit capacity.
const DefaultCapacity = 16

// ElementOps supplies optional element-level deep-copy and deep-release
// hooks. Either field may be nil independently; a nil field disables that
// hook. The vector borrows the ElementOps value and never copies it, so
// it must stay valid for the vector's entire lifetime.
type ElementOps struct {
	// Copy deep-copies the record at src into dst. Both slices are exactly
	// ObjectSize bytes. It reports whether the copy succeeded; on failure
	// the destination record is zero-filled by the vector.
	Copy func(dst, src []byte) bool

	// Release frees any resources the record at elem indirectly references.
	// The record's own bytes still belong to the vector.
	Release func(elem []byte)
}

type options struct {
	capacity int
	ops      *ElementOps
}

// Option configures vector construction.
type Option func(*options)

// WithCapacity sets the initial slot count. Zero (the default) defers
// allocation to the first growth.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithOps attaches an element-operations capability. The vector keeps a
// reference to ops; the caller must keep it alive.
func WithOps(ops *ElementOps) Option {
	return func(o *options) {
		o.ops = ops
	}
}

// Vector is a growable array of fixed-size byte records stored in one
// contiguous, exclusively owned buffer. The zero element lives at the
// start of the buffer; element i occupies bytes [i*size, (i+1)*size).
//
// Invariants: 0 <= count <= capacity, and the buffer is nil exactly when
// capacity is 0.
type Vector struct {
	buf        []byte
	objectSize int
	capacity   int
	count      int
	ops        *ElementOps
}

// New creates a vector holding records of objectSize bytes each.
func New(objectSize int, optFns ...Option) (*Vector, error) {
	if objectSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidObjectSize, objectSize)
	}

	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, opts.capacity)
	}

	v := &Vector{
		objectSize: objectSize,
		ops:        opts.ops,
	}

	if opts.capacity > 0 {
		v.buf = make([]byte, opts.capacity*objectSize)
		v.capacity = opts.capacity
	}

	return v, nil
}

// ObjectSize returns the fixed per-element byte width.
func (v *Vector) ObjectSize() int { return v.objectSize }

// Capacity returns the number of element slots currently allocated.
func (v *Vector) Capacity() int { return v.capacity }

// Count returns the number of live elements.
func (v *Vector) Count() int { return v.count }

// Empty reports whether the vector holds no live elements.
func (v *Vector) Empty() bool { return v.count == 0 }

// slot returns the storage of element i without bounds checking.
func (v *Vector) slot(i int) []byte {
	off := i * v.objectSize
	return v.buf[off : off+v.objectSize : off+v.objectSize]
}

// Get returns the storage of element i, aliasing the internal buffer, or
// nil if i is out of range. The slice is valid until the next mutation.
func (v *Vector) Get(i int) []byte {
	if i < 0 || i >= v.count {
		return nil
	}
	return v.slot(i)
}

// GetFront returns the first live element's storage, or nil if empty.
func (v *Vector) GetFront() []byte {
	if v.count == 0 {
		return nil
	}
	return v.slot(0)
}

// GetBack returns the last live element's storage, or nil if empty.
func (v *Vector) GetBack() []byte {
	if v.count == 0 {
		return nil
	}
	return v.slot(v.count - 1)
}

// Bytes returns the live region of the buffer (count*ObjectSize bytes),
// aliasing internal storage. It is valid until the next mutation.
func (v *Vector) Bytes() []byte {
	return v.buf[: v.count*v.objectSize : v.count*v.objectSize]
}

// Grow adds n element slots. The new capacity is capacity+n, except that
// a target of 0 defaults to DefaultCapacity. Existing element bytes are
// preserved; every previously returned element slice is invalidated. It
// reports whether the vector was (or already is) sized to the target.
func (v *Vector) Grow(n int) bool {
	if n < 0 {
		return false
	}

	newCap := v.capacity + n
	if newCap == 0 {
		newCap = DefaultCapacity
	}

	if newCap == v.capacity {
		return true
	}

	next := make([]byte, newCap*v.objectSize)
	copy(next, v.buf[:v.count*v.objectSize])
	v.buf = next
	v.capacity = newCap

	return true
}

func (v *Vector) full() bool {
	return v.count == v.capacity
}

// growIfFull doubles the capacity when no free slot remains. A vector
// that has never been allocated grows to DefaultCapacity.
func (v *Vector) growIfFull() bool {
	if !v.full() {
		return true
	}
	return v.Grow(v.capacity)
}

// PushBack appends a copy of the first ObjectSize bytes of obj. It
// reports failure, leaving the vector unmodified, when obj is shorter
// than ObjectSize or growth fails.
func (v *Vector) PushBack(obj []byte) bool {
	if len(obj) < v.objectSize {
		return false
	}
	if !v.growIfFull() {
		return false
	}

	copy(v.slot(v.count), obj[:v.objectSize])
	v.count++

	return true
}

// PushFront inserts a copy of obj before the first element, shifting all
// existing elements one slot toward higher indices.
func (v *Vector) PushFront(obj []byte) bool {
	if len(obj) < v.objectSize {
		return false
	}
	if !v.growIfFull() {
		return false
	}

	// Overlap-safe shift of the whole live region.
	copy(v.buf[v.objectSize:(v.count+1)*v.objectSize], v.buf[:v.count*v.objectSize])
	copy(v.buf[:v.objectSize], obj[:v.objectSize])
	v.count++

	return true
}

// Insert places a copy of obj at index i, shifting elements [i, count)
// one slot right. The index must address a live element; appending is
// PushBack's job.
func (v *Vector) Insert(i int, obj []byte) bool {
	if i < 0 || i >= v.count {
		return false
	}
	if len(obj) < v.objectSize {
		return false
	}
	if !v.growIfFull() {
		return false
	}

	copy(v.buf[(i+1)*v.objectSize:(v.count+1)*v.objectSize], v.buf[i*v.objectSize:v.count*v.objectSize])
	copy(v.slot(i), obj[:v.objectSize])
	v.count++

	return true
}

// Set overwrites element i with the first ObjectSize bytes of obj. The
// old contents are neither deep-released nor deep-copied; the caller owns
// any resource implications of discarding them.
func (v *Vector) Set(i int, obj []byte) bool {
	if i < 0 || i >= v.count {
		return false
	}
	if len(obj) < v.objectSize {
		return false
	}

	copy(v.slot(i), obj[:v.objectSize])

	return true
}

// release invokes the deep-release hook on element i, if one is attached.
func (v *Vector) release(i int) {
	if v.ops != nil && v.ops.Release != nil {
		v.ops.Release(v.slot(i))
	}
}

// DiscardBack drops the last element, deep-releasing it first.
func (v *Vector) DiscardBack() bool {
	if v.count == 0 {
		return false
	}

	v.count--
	v.release(v.count)

	return true
}

// DiscardFront drops the first element, deep-releasing it first, then
// shifts the remaining elements one slot left.
func (v *Vector) DiscardFront() bool {
	if v.count == 0 {
		return false
	}

	v.release(0)
	copy(v.buf, v.buf[v.objectSize:v.count*v.objectSize])
	v.count--

	return true
}

// Discard drops element i, deep-releasing it first, then closes the gap.
func (v *Vector) Discard(i int) bool {
	if i < 0 || i >= v.count {
		return false
	}

	v.release(i)
	copy(v.buf[i*v.objectSize:], v.buf[(i+1)*v.objectSize:v.count*v.objectSize])
	v.count--

	return true
}

// PopBack copies the last element into dst and drops it. The deep-release
// hook is NOT invoked: ownership of any nested resource transfers to dst.
func (v *Vector) PopBack(dst []byte) bool {
	if v.count == 0 || len(dst) < v.objectSize {
		return false
	}

	copy(dst[:v.objectSize], v.slot(v.count-1))
	v.count--

	return true
}

// PopFront copies the first element into dst, drops it without
// deep-release, and closes the gap.
func (v *Vector) PopFront(dst []byte) bool {
	if v.count == 0 || len(dst) < v.objectSize {
		return false
	}

	copy(dst[:v.objectSize], v.slot(0))
	copy(v.buf, v.buf[v.objectSize:v.count*v.objectSize])
	v.count--

	return true
}

// Pop copies element i into dst, drops it without deep-release, and
// closes the gap.
func (v *Vector) Pop(i int, dst []byte) bool {
	if i < 0 || i >= v.count || len(dst) < v.objectSize {
		return false
	}

	copy(dst[:v.objectSize], v.slot(i))
	copy(v.buf[i*v.objectSize:], v.buf[(i+1)*v.objectSize:v.count*v.objectSize])
	v.count--

	return true
}

// Walk invokes fn once per live element in ascending index order with
// that element's storage. Mutating the vector from fn is undefined.
func (v *Vector) Walk(fn func(elem []byte)) {
	for i := 0; i < v.count; i++ {
		fn(v.slot(i))
	}
}

// Reset deep-releases every live element in ascending order and sets the
// count to zero. The backing buffer is kept.
func (v *Vector) Reset() {
	if v.count == 0 {
		return
	}

	if v.ops != nil && v.ops.Release != nil {
		v.Walk(v.ops.Release)
	}

	v.count = 0
}

// Release resets the vector and drops the backing buffer, returning it
// to the unallocated state. It is idempotent and safe on a nil receiver.
func (v *Vector) Release() {
	if v == nil || v.buf == nil {
		return
	}

	v.Reset()
	v.buf = nil
	v.capacity = 0
}

// Copy produces an independent vector with the same object size and the
// same ElementOps reference. The clone's capacity is count when
// shrinkToFit, else the source capacity; copying an empty vector with
// shrinkToFit yields an unallocated clone.
//
// Without a deep-copy hook the live region is duplicated byte-wise. With
// one, the hook runs once per element; each element whose hook reports
// failure is left zero-filled and counted in degraded, but the copy as a
// whole still succeeds.
func (v *Vector) Copy(shrinkToFit bool) (clone *Vector, degraded int) {
	capacity := v.capacity
	if shrinkToFit {
		capacity = v.count
	}

	clone = &Vector{
		objectSize: v.objectSize,
		ops:        v.ops,
	}
	if capacity > 0 {
		clone.buf = make([]byte, capacity*v.objectSize)
		clone.capacity = capacity
	}
	clone.count = v.count

	if v.count == 0 {
		return clone, 0
	}

	if v.ops == nil || v.ops.Copy == nil {
		copy(clone.buf, v.buf[:v.count*v.objectSize])
		return clone, 0
	}

	for i := 0; i < v.count; i++ {
		dst := clone.slot(i)
		if !v.ops.Copy(dst, v.slot(i)) {
			// Zero out the slot if the element copy fails.
			clear(dst)
			degraded++
		}
	}

	return clone, degraded
}
