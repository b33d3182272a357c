// Package cdlist provides a circular doubly-linked list backed by a shared
// data pool.
//
// All lists attached to one Pool draw their nodes from a single arena: one
// element slice plus forward/backward link slices, with unused slots threaded
// into a free chain. Links are slot indices rather than pointers, so the
// arena can grow (a copy into larger arrays) without invalidating any list —
// slot indices are stable across growth.
//
// # Quick Start
//
//	pool := cdlist.NewPool[int]()
//
//	l := pool.NewList(func(o *cdlist.Options) {
//	    o.InitialCapacity = 16
//	})
//	defer l.Close()
//
//	_ = l.Insert(0, 1)
//	_ = l.Insert(1, 2)
//	_ = l.Insert(1, 3) // [1, 3, 2]
//
//	pos, err := l.Search(3) // pos == 1
//
// Elements are accessed by signed logical index, negative values counting
// from the end:
//
//	v, _ := l.At(-1) // last element
//	*v = 42          // in-place mutation
//
// Each list additionally carries a cursor for stepwise traversal that wraps
// around the ring in both directions:
//
//	l.First()
//	for !l.IsLast() {
//	    l.Advance()
//	}
//
// # Lifecycle
//
// The arena is materialized lazily by the first NewList call on a pool and
// released when the last attached list is closed. Capacity and growth options
// passed to NewList take effect only for the call that materializes the
// arena; later calls share the existing arena and their options are ignored.
//
// A Pool and its lists are not safe for concurrent use. If multiple
// goroutines mutate lists sharing one pool, the caller must serialize access
// externally.
package cdlist
