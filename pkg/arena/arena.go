// Package arena implements a generational pool: a sparse slot array
// addressed by generation-checked handles. Handles stay cheap and
// copyable while use-after-free is detected by generation mismatch, so
// tree nodes can hold parent/child references without raw pointers.
package arena

import (
	"fmt"

	"github.com/lichnak/rg3d/pkg/errors"
)

// Handle is an opaque generation-checked reference to an arena slot.
// The zero value is the "none" sentinel and never addresses a live slot.
type Handle struct {
	index      uint32
	generation uint32
}

// None is the null handle.
var None = Handle{}

// IsNone reports whether the handle is the null sentinel.
func (h Handle) IsNone() bool {
	return h.generation == 0
}

// IsSome reports whether the handle is not the null sentinel.
func (h Handle) IsSome() bool {
	return h.generation != 0
}

// Index returns the slot index addressed by the handle.
func (h Handle) Index() int {
	return int(h.index)
}

func (h Handle) String() string {
	if h.IsNone() {
		return "Handle(none)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.generation)
}

type slot[T any] struct {
	generation uint32
	value      T
	occupied   bool
}

// Arena is a generational pool of values of type T.
//
// Freed slots are recycled through a free list; freeing bumps the slot
// generation so handles issued before the free never resolve to a newer
// occupant.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Alloc stores value in a fresh or recycled slot and returns its handle.
func (a *Arena[T]) Alloc(value T) Handle {
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[index]
		s.value = value
		s.occupied = true
		return Handle{index: index, generation: s.generation}
	}
	a.slots = append(a.slots, slot[T]{generation: 1, value: value, occupied: true})
	return Handle{index: uint32(len(a.slots) - 1), generation: 1}
}

// Free removes the value addressed by handle and invalidates every copy
// of the handle by bumping the slot generation. The removed value is
// returned. Freeing through a stale or null handle is a contract
// violation and fails fast.
func (a *Arena[T]) Free(handle Handle) T {
	s := a.checkedSlot(handle, "arena.Free")
	if !s.occupied {
		errors.Fatal("arena.Free", errors.KindArena, "slot %d is vacant", handle.index)
	}
	var zero T
	value := s.value
	s.value = zero
	s.occupied = false
	s.generation++
	a.free = append(a.free, handle.index)
	return value
}

// Borrow returns the value addressed by handle. Borrowing through a
// stale, null or out-of-range handle, or from a slot that is currently
// taken out, is a contract violation and fails fast.
func (a *Arena[T]) Borrow(handle Handle) T {
	s := a.checkedSlot(handle, "arena.Borrow")
	if !s.occupied {
		errors.Fatal("arena.Borrow", errors.KindArena,
			"slot %d is vacant (node taken out during dispatch?)", handle.index)
	}
	return s.value
}

// IsValid reports whether handle addresses a live value. It never fails:
// null, stale, out-of-range and taken-out handles all report false.
func (a *Arena[T]) IsValid(handle Handle) bool {
	if handle.IsNone() || int(handle.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[handle.index]
	return s.occupied && s.generation == handle.generation
}

// TakeAt removes and returns the value at the given slot index without
// changing the slot's generation, leaving the slot vacant. Returns
// ok=false if the index is out of range or the slot holds nothing.
//
// The taken value must be returned with PutBack before the slot can be
// used again; the event router relies on this to give a node exclusive
// access to the rest of the tree while it handles an event.
func (a *Arena[T]) TakeAt(index int) (value T, ok bool) {
	if index < 0 || index >= len(a.slots) {
		return value, false
	}
	s := &a.slots[index]
	if !s.occupied {
		return value, false
	}
	var zero T
	value = s.value
	s.value = zero
	s.occupied = false
	return value, true
}

// PutBack reinserts a value taken out with TakeAt. Reinserting into a
// slot that was not vacated is a contract violation and fails fast.
func (a *Arena[T]) PutBack(index int, value T) {
	if index < 0 || index >= len(a.slots) {
		errors.Fatal("arena.PutBack", errors.KindArena, "index %d out of range", index)
	}
	s := &a.slots[index]
	if s.occupied {
		errors.Fatal("arena.PutBack", errors.KindArena, "slot %d is occupied", index)
	}
	s.value = value
	s.occupied = true
}

// HandleFromIndex returns the handle addressing the given slot index at
// its current generation. The handle is usable even while the slot is
// temporarily vacated by TakeAt. Returns None for out-of-range indices.
func (a *Arena[T]) HandleFromIndex(index int) Handle {
	if index < 0 || index >= len(a.slots) {
		return None
	}
	return Handle{index: uint32(index), generation: a.slots[index].generation}
}

// Cap returns the total number of slots, occupied or not.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// AliveCount returns the number of occupied slots.
func (a *Arena[T]) AliveCount() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied slot in index order.
func (a *Arena[T]) Each(fn func(value T)) {
	for i := range a.slots {
		if a.slots[i].occupied {
			fn(a.slots[i].value)
		}
	}
}

// EachWithHandle calls fn for every occupied slot in index order,
// passing the slot's handle alongside its value.
func (a *Arena[T]) EachWithHandle(fn func(handle Handle, value T)) {
	for i := range a.slots {
		if a.slots[i].occupied {
			fn(Handle{index: uint32(i), generation: a.slots[i].generation}, a.slots[i].value)
		}
	}
}

func (a *Arena[T]) checkedSlot(handle Handle, op string) *slot[T] {
	if handle.IsNone() {
		errors.Fatal(op, errors.KindArena, "null handle")
	}
	if int(handle.index) >= len(a.slots) {
		errors.Fatal(op, errors.KindArena, "index %d out of range (cap %d)", handle.index, len(a.slots))
	}
	s := &a.slots[handle.index]
	if s.generation != handle.generation {
		errors.Fatal(op, errors.KindArena,
			"stale handle %v (slot generation %d)", handle, s.generation)
	}
	return s
}
