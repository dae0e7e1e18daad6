// Package rawvec implements a type-erased growable array over raw,
// fixed-size byte records, plus a LIFO stack adapter on top of it.
//
// A Vector owns one contiguous buffer of capacity*ObjectSize bytes and
// never interprets element contents. Callers that store indirect
// resources inside their records can attach an ElementOps capability
// whose deep-copy and deep-release hooks the vector invokes at the
// documented points (whole-vector copy, discard, reset).
//
// The package exists for untyped boundaries: foreign data, wire records,
// or any situation where the element shape is only known at run time.
// When the element type is known at compile time, prefer the generic
// containers in the parent package.
//
// Vectors are not safe for concurrent use. Any slice returned by Get,
// GetFront, GetBack, Bytes or a Stack's Peek aliases the internal buffer
// and is valid only until the next mutating call.
package rawvec
