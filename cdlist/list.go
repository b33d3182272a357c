package cdlist

// List is a circular doubly-linked list of T whose nodes live in a shared
// Pool. Several lists can be attached to one pool; each owns a disjoint ring
// of slots plus a cursor for stepwise traversal.
//
// A List is not safe for concurrent use. A closed list must not be used.
type List[T comparable] struct {
	pool *Pool[T]

	head   slot
	cursor slot
	count  uint32

	closed bool
}

// NewList attaches a new, empty list to the pool.
//
// The capacity and growth options take effect only when this call
// materializes the arena, i.e. when no other list is currently attached.
// Otherwise the existing arena is shared and the options are ignored.
func (p *Pool[T]) NewList(optFns ...func(o *Options)) *List[T] {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	p.attach(opts)

	return &List[T]{
		pool:   p,
		head:   noSlot,
		cursor: noSlot,
	}
}

// Close clears the list and detaches it from the pool. The last list out
// releases the arena. Close is idempotent.
func (l *List[T]) Close() error {
	if l.closed {
		return nil
	}

	l.Clear()
	l.pool.detach()
	l.closed = true

	return nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return int(l.count) }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.count == 0 }

// Clear returns every node of the list to the pool's free chain and resets
// the list to empty. The whole ring is spliced onto the free chain in O(1).
// No-op on an empty list.
func (l *List[T]) Clear() {
	if l.count == 0 {
		return
	}

	// The ring is already chained through the forward links; connecting its
	// last node to the free chain and pointing the free head at the ring's
	// first node frees everything at once.
	last := l.pool.prev[l.head]
	l.pool.next[last] = l.pool.freeHead
	l.pool.freeHead = l.head

	l.head = noSlot
	l.cursor = noSlot
	l.count = 0
}

// Search returns the zero-based logical position of the first element equal
// to key, scanning from the head. Returns ErrNotFound if no element matches.
// O(n).
func (l *List[T]) Search(key T) (int, error) {
	pos := l.head

	for i := uint32(0); i < l.count; i++ {
		if l.pool.data[pos] == key {
			l.pool.metrics.RecordSearch(true)
			return int(i), nil
		}
		pos = l.pool.next[pos]
	}

	l.pool.metrics.RecordSearch(false)

	return 0, ErrNotFound
}

// At returns a pointer to the element at the given logical index, permitting
// in-place modification. Negative indices count from the end (-1 is the last
// element); the valid range is [-Len, Len-1]. Returns ErrIndexOutOfRange
// otherwise.
//
// The pointer is valid until the next operation that grows the arena.
// O(n) in the distance from the head.
func (l *List[T]) At(index int) (*T, error) {
	if index < -int(l.count) || index >= int(l.count) {
		return nil, &ErrIndexOutOfRange{Index: index, Count: int(l.count)}
	}

	pos := l.head
	if index < 0 {
		for i := 0; i < -index; i++ {
			pos = l.pool.prev[pos]
		}
	} else {
		for i := 0; i < index; i++ {
			pos = l.pool.next[pos]
		}
	}

	return &l.pool.data[pos], nil
}

// Map applies fn to each element in logical order, front to back, once per
// element. The element is passed by pointer, so mutations are visible in
// the list.
func (l *List[T]) Map(fn func(*T)) {
	pos := l.head

	for i := uint32(0); i < l.count; i++ {
		fn(&l.pool.data[pos])
		pos = l.pool.next[pos]
	}
}

// Insert splices v into the ring immediately before the node currently at
// logical position pos. The valid range is [0, Len]; pos == Len appends.
// Grows the arena when the free chain is empty; returns ErrPoolExhausted if
// the growth formula cannot increase the capacity, and ErrIndexOutOfRange
// for an invalid pos. A failed insert leaves the list unchanged.
//
// Inserting at position 0 makes the new node the head, so At(0) always
// returns the value just inserted there.
func (l *List[T]) Insert(pos int, v T) error {
	if pos < 0 || pos > int(l.count) {
		err := &ErrIndexOutOfRange{Index: pos, Count: int(l.count)}
		l.pool.metrics.RecordInsert(err)
		return err
	}

	s, err := l.pool.alloc()
	if err != nil {
		l.pool.metrics.RecordInsert(err)
		return err
	}

	l.pool.data[s] = v

	if l.count == 0 {
		// Sole node: it is its own neighbor both ways.
		l.pool.next[s] = s
		l.pool.prev[s] = s
		l.head = s
	} else {
		// Start at the last node so pos steps land on the predecessor of
		// the insertion point, for pos == 0 and pos == count alike.
		pred := l.pool.prev[l.head]
		for i := 0; i < pos; i++ {
			pred = l.pool.next[pred]
		}
		succ := l.pool.next[pred]

		l.pool.next[s] = succ
		l.pool.prev[s] = pred
		l.pool.next[pred] = s
		l.pool.prev[succ] = s

		if pos == 0 {
			l.head = s
		}
	}

	l.count++
	l.pool.metrics.RecordInsert(nil)

	return nil
}

// Remove splices the node at logical position pos out of the ring and
// returns its slot to the free chain. The valid range is [0, Len); returns
// ErrIndexOutOfRange otherwise. Clears the cursor if it pointed at the
// removed node; if the head is removed, the head advances to its former
// successor.
func (l *List[T]) Remove(pos int) error {
	if pos < 0 || pos >= int(l.count) {
		err := &ErrIndexOutOfRange{Index: pos, Count: int(l.count)}
		l.pool.metrics.RecordRemove(err)
		return err
	}

	var victim slot

	if l.count == 1 {
		victim = l.head
		l.head = noSlot
		l.cursor = noSlot
	} else {
		pred := l.pool.prev[l.head]
		for i := 0; i < pos; i++ {
			pred = l.pool.next[pred]
		}
		victim = l.pool.next[pred]

		if victim == l.cursor {
			l.cursor = noSlot
		}
		if victim == l.head {
			l.head = l.pool.next[l.head]
		}

		succ := l.pool.next[victim]
		l.pool.next[pred] = succ
		l.pool.prev[succ] = pred
	}

	l.pool.free(victim)
	l.count--
	l.pool.metrics.RecordRemove(nil)

	return nil
}
