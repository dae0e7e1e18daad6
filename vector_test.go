package castor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)
	assert.Equal(t, 0, v.Capacity())
	assert.True(t, v.Empty())

	v, err = New(WithCapacity[int](32))
	require.NoError(t, err)
	assert.Equal(t, 32, v.Capacity())
	assert.Equal(t, 0, v.Count())

	_, err = New(WithCapacity[int](-1))
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestPushBackSequence(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		v.PushBack(i * 3)
		require.Equal(t, i+1, v.Count())
	}

	for i := 0; i < 100; i++ {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*3, got)
	}

	_, ok := v.Get(100)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)
}

func TestGrowth(t *testing.T) {
	v, err := New[string]()
	require.NoError(t, err)

	v.PushBack("a")
	assert.Equal(t, DefaultCapacity, v.Capacity())

	for i := 1; i < DefaultCapacity; i++ {
		v.PushBack("x")
		assert.Equal(t, DefaultCapacity, v.Capacity())
	}

	v.PushBack("overflow")
	assert.Equal(t, 2*DefaultCapacity, v.Capacity())
	assert.Equal(t, DefaultCapacity+1, v.Count())
}

func TestGrow(t *testing.T) {
	v, err := New(WithCapacity[int](4))
	require.NoError(t, err)

	v.PushBack(7)
	v.Grow(10)
	assert.Equal(t, 14, v.Capacity())

	got, ok := v.Get(0)
	require.True(t, ok)
	assert.Equal(t, 7, got)

	v.Grow(-5)
	assert.Equal(t, 14, v.Capacity())
}

func TestFrontOperations(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)

	v.PushBack(1)
	v.PushBack(2)
	v.PushFront(0)

	for i := 0; i < 3; i++ {
		got, ok := v.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}

	front, ok := v.GetFront()
	require.True(t, ok)
	assert.Equal(t, 0, front)

	back, ok := v.GetBack()
	require.True(t, ok)
	assert.Equal(t, 2, back)
}

func TestInsert(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)

	assert.False(t, v.Insert(0, 9)) // empty vector

	v.PushBack(0)
	v.PushBack(2)
	assert.False(t, v.Insert(2, 9)) // end slot is PushBack's job
	assert.False(t, v.Insert(-1, 9))

	require.True(t, v.Insert(1, 1))
	require.Equal(t, 3, v.Count())
	for i := 0; i < 3; i++ {
		got, _ := v.Get(i)
		assert.Equal(t, i, got)
	}
}

func TestPops(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}

	back, ok := v.PopBack()
	require.True(t, ok)
	assert.Equal(t, 4, back)

	front, ok := v.PopFront()
	require.True(t, ok)
	assert.Equal(t, 0, front)

	mid, ok := v.Pop(1)
	require.True(t, ok)
	assert.Equal(t, 2, mid)

	_, ok = v.Pop(5)
	assert.False(t, ok)

	// 1, 3 remain.
	require.Equal(t, 2, v.Count())
	a, _ := v.Get(0)
	b, _ := v.Get(1)
	assert.Equal(t, 1, a)
	assert.Equal(t, 3, b)
}

func TestPushPopRoundTrip(t *testing.T) {
	v, err := New[string]()
	require.NoError(t, err)

	v.PushBack("only")
	got, ok := v.PopBack()
	require.True(t, ok)
	assert.Equal(t, "only", got)
	assert.Equal(t, 0, v.Count())
}

func TestDiscardInvokesRelease(t *testing.T) {
	var released []int
	ops := &ElementOps[int]{
		Release: func(elem *int) { released = append(released, *elem) },
	}

	v, err := New(WithOps(ops))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		v.PushBack(i)
	}

	require.True(t, v.DiscardBack())  // releases 3
	require.True(t, v.DiscardFront()) // releases 0
	require.True(t, v.Discard(1))     // releases 2

	assert.Equal(t, []int{3, 0, 2}, released)
	require.Equal(t, 1, v.Count())
	got, _ := v.Get(0)
	assert.Equal(t, 1, got)
}

func TestPopSkipsRelease(t *testing.T) {
	releases := 0
	ops := &ElementOps[int]{
		Release: func(*int) { releases++ },
	}

	v, err := New(WithOps(ops))
	require.NoError(t, err)
	v.PushBack(1)
	v.PushBack(2)

	_, ok := v.PopBack()
	require.True(t, ok)
	_, ok = v.PopFront()
	require.True(t, ok)

	assert.Equal(t, 0, releases)
}

func TestSet(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)

	assert.False(t, v.Set(0, 1))

	v.PushBack(1)
	require.True(t, v.Set(0, 2))
	got, _ := v.Get(0)
	assert.Equal(t, 2, got)

	assert.False(t, v.Set(1, 3))
}

func TestWalk(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		v.PushBack(i)
	}

	// Walk hands out addresses, so elements can be updated in place.
	v.Walk(func(elem *int) { *elem *= 10 })

	var seen []int
	v.Walk(func(elem *int) { seen = append(seen, *elem) })
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50}, seen)
}

func TestResetRelease(t *testing.T) {
	var released []int
	ops := &ElementOps[int]{
		Release: func(elem *int) { released = append(released, *elem) },
	}

	v, err := New(WithOps(ops))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v.PushBack(i)
	}

	v.Reset()
	assert.Equal(t, []int{0, 1, 2}, released)
	assert.Equal(t, 0, v.Count())
	assert.Equal(t, DefaultCapacity, v.Capacity())

	v.PushBack(9)
	v.Release()
	assert.Equal(t, 9, released[3])
	assert.Equal(t, 0, v.Capacity())

	// Idempotent, and the vector stays usable afterwards.
	v.Release()
	v.PushBack(1)
	assert.Equal(t, DefaultCapacity, v.Capacity())

	var nilVec *Vector[int]
	nilVec.Release()
}

func TestCopyCapacity(t *testing.T) {
	v, err := New(WithCapacity[int](10))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v.PushBack(i)
	}

	clone, degraded := v.Copy(false)
	assert.Zero(t, degraded)
	assert.Equal(t, 10, clone.Capacity())
	assert.Equal(t, 3, clone.Count())

	shrunk, _ := v.Copy(true)
	assert.Equal(t, 3, shrunk.Capacity())
	assert.Equal(t, 3, shrunk.Count())

	empty, err := New(WithCapacity[int](10))
	require.NoError(t, err)
	emptyClone, _ := empty.Copy(true)
	assert.Equal(t, 0, emptyClone.Capacity())
}

func TestCopyIndependence(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)
	v.PushBack(1)

	clone, _ := v.Copy(false)
	require.True(t, clone.Set(0, 2))
	clone.PushBack(3)

	got, _ := v.Get(0)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, v.Count())
}

func TestCopyDeepHook(t *testing.T) {
	ops := &ElementOps[[]byte]{
		Copy: func(dst, src *[]byte) bool {
			*dst = append([]byte(nil), *src...)
			return true
		},
	}

	v, err := New(WithOps(ops))
	require.NoError(t, err)
	v.PushBack([]byte("hello"))

	clone, degraded := v.Copy(true)
	assert.Zero(t, degraded)

	// Deep copy: mutating the clone's element leaves the source alone.
	elem, ok := clone.Get(0)
	require.True(t, ok)
	elem[0] = 'H'

	src, _ := v.Get(0)
	assert.Equal(t, []byte("hello"), src)
}

func TestCopyDeepHookFailure(t *testing.T) {
	ops := &ElementOps[[]byte]{
		Copy: func(dst, src *[]byte) bool {
			*dst = *src
			return false // always fail
		},
	}

	v, err := New(WithOps(ops))
	require.NoError(t, err)
	v.PushBack([]byte("a"))
	v.PushBack([]byte("b"))

	clone, degraded := v.Copy(false)
	assert.Equal(t, 2, degraded)
	require.Equal(t, 2, clone.Count())

	// Failed elements degrade to the zero value; count is preserved.
	for i := 0; i < 2; i++ {
		elem, ok := clone.Get(i)
		require.True(t, ok)
		assert.Nil(t, elem)
	}
}

func TestEmptyOperationsFail(t *testing.T) {
	v, err := New(WithCapacity[int](4))
	require.NoError(t, err)

	_, ok := v.Get(0)
	assert.False(t, ok)
	_, ok = v.PopBack()
	assert.False(t, ok)
	_, ok = v.PopFront()
	assert.False(t, ok)
	_, ok = v.Pop(0)
	assert.False(t, ok)
	assert.False(t, v.DiscardBack())
	assert.False(t, v.DiscardFront())
	assert.False(t, v.Discard(0))
	assert.False(t, v.Set(0, 1))
	assert.False(t, v.Insert(0, 1))

	assert.Equal(t, 0, v.Count())
	assert.Equal(t, 4, v.Capacity())
}

func BenchmarkVectorPushBack(b *testing.B) {
	v, _ := New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.PushBack(i)
	}
}
