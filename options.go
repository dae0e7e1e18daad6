package castor

type options[T any] struct {
	capacity int
	ops      *ElementOps[T]
}

// Option configures Vector and Stack construction.
type Option[T any] func(*options[T])

// WithCapacity sets the initial slot count. Zero (the default) defers
// allocation to the first growth, which sizes the container to
// DefaultCapacity.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithOps attaches an element-operations capability. The container keeps
// a reference to ops; the caller must keep it alive for the container's
// entire lifetime.
func WithOps[T any](ops *ElementOps[T]) Option[T] {
	return func(o *options[T]) {
		o.ops = ops
	}
}
