// Package sample provides uniform sampling without replacement from a fixed
// integer range.
package sample

import (
	"errors"
	"math/rand"
)

// ErrExhausted is returned by Next once every value has been drawn.
var ErrExhausted = errors.New("sampler exhausted")

// Sampler draws each value in [0, n) exactly once, in uniformly random
// order. Drawing swaps the chosen element with the last live one and shrinks
// the live range, so every draw is O(1).
//
// Not safe for concurrent use.
type Sampler struct {
	elements []uint32
	rand     *rand.Rand
}

// New creates a sampler over [0, n) using the given seed.
func New(n uint32, seed int64) *Sampler {
	elements := make([]uint32, n)
	for i := range elements {
		elements[i] = uint32(i)
	}

	return &Sampler{
		elements: elements,
		rand:     rand.New(rand.NewSource(seed)), // nolint gosec
	}
}

// Next draws one value without replacement. Returns ErrExhausted once all
// values have been drawn.
func (s *Sampler) Next() (uint32, error) {
	n := len(s.elements)
	if n == 0 {
		return 0, ErrExhausted
	}

	r := s.rand.Intn(n)
	chosen := s.elements[r]

	s.elements[r] = s.elements[n-1]
	s.elements = s.elements[:n-1]

	return chosen, nil
}

// Remaining returns the number of values not yet drawn.
func (s *Sampler) Remaining() int {
	return len(s.elements)
}
