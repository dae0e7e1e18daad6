// Package castor provides growable array and stack containers with
// optional element-level deep-copy and deep-release hooks.
//
// The generic Vector and Stack are the primary surface: fixed-shape
// elements of any type T, doubling growth with a floor of 16 slots, and
// insertion/removal at the front, back or an arbitrary index. For untyped
// boundaries where the element shape is only known at run time, the
// rawvec subpackage offers the same contract over raw fixed-size byte
// records, and the snapshot subpackage serializes those raw vectors.
//
// # Quick Start
//
//	v, _ := castor.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushFront(0)
//
//	v.Walk(func(n *int) { fmt.Println(*n) }) // 0 1 2
//
//	s, _ := castor.NewStack[string]()
//	s.Push("a")
//	s.Push("b")
//	top, ok := s.Pop() // "b", true
//
// # Element Operations
//
// Elements that indirectly own resources can attach hooks:
//
//	ops := &castor.ElementOps[*bytes.Buffer]{
//	    Copy: func(dst, src **bytes.Buffer) bool {
//	        *dst = bytes.NewBuffer(append([]byte(nil), (*src).Bytes()...))
//	        return true
//	    },
//	    Release: func(elem **bytes.Buffer) { (*elem).Reset() },
//	}
//	v, _ := castor.New(castor.WithOps(ops))
//
// Removal invokes Release on the victim element, except for the pop
// family, which copies the element out and transfers ownership to the
// caller. Whole-container Copy invokes the deep-copy hook per element; a
// failing hook leaves that one destination element as the zero value
// while the copy as a whole still succeeds.
//
// Containers are not safe for concurrent use and traversal callbacks
// must not mutate the container they run on.
package castor
