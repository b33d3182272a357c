package cdlist

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Search when the key is absent after a full scan.
	ErrNotFound = errors.New("key not found")

	// ErrNoCurrentNode is returned by cursor-relative operations when the
	// cursor is unpositioned.
	ErrNoCurrentNode = errors.New("no current node")

	// ErrEmptyList is returned by First and Last on an empty list.
	ErrEmptyList = errors.New("empty list")
)

// ErrIndexOutOfRange indicates an index or position argument outside its
// documented valid range.
type ErrIndexOutOfRange struct {
	Index int // Index is the offending argument.
	Count int // Count is the list length at the time of the call.
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for list of %d elements", e.Index, e.Count)
}

// ErrPoolExhausted indicates that the free chain was empty and the growth
// formula floor(capacity*multiplier)+additive failed to strictly increase
// the capacity (including uint32 overflow of the result).
type ErrPoolExhausted struct {
	Capacity   uint32
	Multiplier float64
	Additive   uint32
}

func (e *ErrPoolExhausted) Error() string {
	return fmt.Sprintf("pool exhausted: growth from capacity %d (multiplier %g, additive %d) does not increase capacity",
		e.Capacity, e.Multiplier, e.Additive)
}
