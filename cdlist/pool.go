package cdlist

import (
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// slot addresses one fixed position in the arena arrays.
type slot uint32

// noSlot marks "no slot": the end of the free chain, an empty list's head,
// an unpositioned cursor.
const noSlot slot = math.MaxUint32

// Pool is the shared arena backing every List attached to it: one element
// slice plus forward/backward link slices, with unused slots threaded into a
// free chain through the forward links.
//
// The arrays are materialized lazily by the first NewList call and released
// when the last attached list is closed. Growth copies all slots into larger
// arrays, so slot indices held by attached lists stay valid.
//
// A Pool is not safe for concurrent use.
type Pool[T comparable] struct {
	data []T
	next []slot
	prev []slot

	freeHead slot
	capacity uint32

	multiplier float64
	additive   uint32

	lists int // live lists attached to this pool

	logger  *Logger
	metrics MetricsCollector
}

// NewPool creates an empty pool. No arena storage is allocated until the
// first list is attached via NewList.
func NewPool[T comparable](optFns ...PoolOption) *Pool[T] {
	o := applyPoolOptions(optFns)

	return &Pool[T]{
		freeHead: noSlot,
		logger:   o.logger,
		metrics:  o.metrics,
	}
}

// Lists returns the number of lists currently attached to the pool.
func (p *Pool[T]) Lists() int { return p.lists }

// Capacity returns the current arena capacity in slots. It is zero while no
// list is attached.
func (p *Pool[T]) Capacity() uint32 { return p.capacity }

// attach registers a new list. The first list (re)materializes the arena
// using its options; later lists share the existing arena.
func (p *Pool[T]) attach(opts Options) {
	if p.lists == 0 {
		p.materialize(opts)
	}
	p.lists++
}

// detach deregisters a list. The last list out releases the arena so a
// future first attach starts fresh.
func (p *Pool[T]) detach() {
	p.lists--
	if p.lists == 0 {
		p.release()
	}
}

func (p *Pool[T]) materialize(opts Options) {
	capacity := opts.InitialCapacity
	if capacity == 0 {
		capacity = DefaultOptions.InitialCapacity
	}

	p.data = make([]T, capacity)
	p.next = make([]slot, capacity)
	p.prev = make([]slot, capacity)

	p.threadFreeChain(0, capacity)
	p.freeHead = 0

	p.capacity = capacity
	p.multiplier = opts.GrowthMultiplier
	p.additive = opts.GrowthAdditive

	p.logger.Debug("arena materialized",
		"capacity", capacity,
		"growth_multiplier", p.multiplier,
		"growth_additive", p.additive,
	)
}

func (p *Pool[T]) release() {
	p.data = nil
	p.next = nil
	p.prev = nil
	p.freeHead = noSlot
	p.capacity = 0

	p.logger.Debug("arena released")
}

// threadFreeChain links slots [lo, hi) into a fresh free chain terminated
// by noSlot. The caller updates freeHead.
func (p *Pool[T]) threadFreeChain(lo, hi uint32) {
	for i := lo; i < hi-1; i++ {
		p.next[i] = slot(i + 1)
	}
	p.next[hi-1] = noSlot
}

// alloc takes one slot off the free chain, growing the arena if the chain
// is empty.
func (p *Pool[T]) alloc() (slot, error) {
	if p.freeHead == noSlot {
		if err := p.grow(); err != nil {
			return noSlot, err
		}
	}

	s := p.freeHead
	p.freeHead = p.next[s]

	return s, nil
}

// free returns a slot to the front of the free chain.
func (p *Pool[T]) free(s slot) {
	p.next[s] = p.freeHead
	p.freeHead = s
}

// grow reallocates the arena at floor(capacity*multiplier)+additive slots.
// Slot indices are preserved: existing slots are copied into the low range
// unchanged and only the new tail is threaded into the free chain.
func (p *Pool[T]) grow() error {
	newCap, ok := p.grownCapacity()
	if !ok {
		err := &ErrPoolExhausted{
			Capacity:   p.capacity,
			Multiplier: p.multiplier,
			Additive:   p.additive,
		}
		p.metrics.RecordGrowth(p.capacity, p.capacity, 0, err)
		return err
	}

	start := time.Now()

	data := make([]T, newCap)
	next := make([]slot, newCap)
	prev := make([]slot, newCap)

	copy(data, p.data)
	copy(next, p.next)
	copy(prev, p.prev)

	p.data = data
	p.next = next
	p.prev = prev

	oldCap := p.capacity
	p.capacity = newCap
	p.threadFreeChain(oldCap, newCap)
	p.freeHead = slot(oldCap)

	p.metrics.RecordGrowth(oldCap, newCap, time.Since(start), nil)
	p.logger.Debug("arena grown",
		"old_capacity", oldCap,
		"new_capacity", newCap,
	)

	return nil
}

// grownCapacity evaluates the growth formula. ok is false when the result
// does not strictly increase the capacity or does not fit in uint32.
func (p *Pool[T]) grownCapacity() (uint32, bool) {
	scaled := math.Floor(float64(p.capacity) * p.multiplier)
	if math.IsNaN(scaled) || scaled < 0 || scaled > math.MaxUint32 {
		return 0, false
	}

	newCap := uint64(scaled) + uint64(p.additive)
	if newCap > math.MaxUint32 || newCap <= uint64(p.capacity) {
		return 0, false
	}

	return uint32(newCap), true
}

// freeSlots walks the free chain and returns its length.
func (p *Pool[T]) freeSlots() uint32 {
	var n uint32
	for s := p.freeHead; s != noSlot; s = p.next[s] {
		n++
	}
	return n
}

// PoolStats is a snapshot of a Pool's state.
type PoolStats struct {
	Capacity         uint32
	FreeSlots        uint32
	Lists            int
	GrowthMultiplier float64
	GrowthAdditive   uint32
}

// Stats returns a snapshot of the pool's state. FreeSlots walks the free
// chain, so this is O(capacity) in the worst case.
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Capacity:         p.capacity,
		FreeSlots:        p.freeSlots(),
		Lists:            p.lists,
		GrowthMultiplier: p.multiplier,
		GrowthAdditive:   p.additive,
	}
}

// CheckInvariants verifies the structural invariants of the arena and the
// given lists:
//
//   - the free chain stays in bounds and visits each slot at most once;
//   - each list forms a consistent circular ring that closes after exactly
//     Len steps, with matching forward and backward links;
//   - no slot is owned by two rings or by a ring and the free chain.
//
// When every list attached to the pool is passed, it additionally verifies
// that the occupied slots and the free chain partition the whole arena.
// Intended for tests and debugging; it allocates and is O(capacity).
func (p *Pool[T]) CheckInvariants(lists ...*List[T]) error {
	free := roaring.New()
	for s := p.freeHead; s != noSlot; s = p.next[s] {
		if uint32(s) >= p.capacity {
			return fmt.Errorf("free chain leaves arena bounds at slot %d (capacity %d)", s, p.capacity)
		}
		if free.Contains(uint32(s)) {
			return fmt.Errorf("free chain revisits slot %d", s)
		}
		free.Add(uint32(s))
	}

	occupied := roaring.New()
	for i, l := range lists {
		if l.count == 0 {
			if l.head != noSlot {
				return fmt.Errorf("list %d: empty but head is set", i)
			}
			continue
		}

		pos := l.head
		for n := uint32(0); n < l.count; n++ {
			if uint32(pos) >= p.capacity {
				return fmt.Errorf("list %d: ring leaves arena bounds at slot %d (capacity %d)", i, pos, p.capacity)
			}
			if occupied.Contains(uint32(pos)) {
				return fmt.Errorf("slot %d owned by more than one ring", pos)
			}
			occupied.Add(uint32(pos))

			succ, pred := p.next[pos], p.prev[pos]
			if uint32(succ) >= p.capacity || uint32(pred) >= p.capacity {
				return fmt.Errorf("list %d: dangling link at slot %d", i, pos)
			}
			if p.prev[succ] != pos || p.next[pred] != pos {
				return fmt.Errorf("list %d: inconsistent links at slot %d", i, pos)
			}

			pos = p.next[pos]
		}
		if pos != l.head {
			return fmt.Errorf("list %d: ring does not close after %d steps", i, l.count)
		}
	}

	if overlap := roaring.And(free, occupied); !overlap.IsEmpty() {
		return fmt.Errorf("slot %d is both free and occupied", overlap.Minimum())
	}

	if len(lists) == p.lists {
		if total := free.GetCardinality() + occupied.GetCardinality(); total != uint64(p.capacity) {
			return fmt.Errorf("free and occupied slots cover %d of %d slots", total, p.capacity)
		}
	}

	return nil
}
