package cdlist

// Cur returns a pointer to the element under the cursor. Returns
// ErrNoCurrentNode if the cursor is unpositioned.
func (l *List[T]) Cur() (*T, error) {
	if l.cursor == noSlot {
		return nil, ErrNoCurrentNode
	}

	return &l.pool.data[l.cursor], nil
}

// Advance moves the cursor one step forward and returns the element now
// under it. Moving past the last element wraps around to the first. Returns
// ErrNoCurrentNode if the cursor is unpositioned.
func (l *List[T]) Advance() (*T, error) {
	if l.cursor == noSlot {
		return nil, ErrNoCurrentNode
	}

	l.cursor = l.pool.next[l.cursor]

	return &l.pool.data[l.cursor], nil
}

// Retreat moves the cursor one step backward and returns the element now
// under it. Moving before the first element wraps around to the last.
// Returns ErrNoCurrentNode if the cursor is unpositioned.
func (l *List[T]) Retreat() (*T, error) {
	if l.cursor == noSlot {
		return nil, ErrNoCurrentNode
	}

	l.cursor = l.pool.prev[l.cursor]

	return &l.pool.data[l.cursor], nil
}

// First positions the cursor at the first logical element and returns it.
// Returns ErrEmptyList on an empty list.
func (l *List[T]) First() (*T, error) {
	if l.head == noSlot {
		return nil, ErrEmptyList
	}

	l.cursor = l.head

	return &l.pool.data[l.cursor], nil
}

// Last positions the cursor at the last logical element and returns it.
// Returns ErrEmptyList on an empty list.
func (l *List[T]) Last() (*T, error) {
	if l.head == noSlot {
		return nil, ErrEmptyList
	}

	l.cursor = l.pool.prev[l.head]

	return &l.pool.data[l.cursor], nil
}

// IsFirst reports whether the cursor is on the first logical element.
// Returns false on an empty list or an unpositioned cursor.
func (l *List[T]) IsFirst() bool {
	return l.head != noSlot && l.cursor == l.head
}

// IsLast reports whether the cursor is on the last logical element.
// Returns false on an empty list or an unpositioned cursor.
func (l *List[T]) IsLast() bool {
	return l.head != noSlot && l.cursor == l.pool.prev[l.head]
}
