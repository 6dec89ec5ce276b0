package arena

import (
	"fmt"
	"math"
)

// Handle addresses a slot of an arena.
type Handle uint32

// Nil is the reserved handle of slot 0. It is never returned by Alloc.
const Nil Handle = 0

// maxSlots is the number of addressable slots, including the reserved one.
const maxSlots = math.MaxUint32

// Arena is a growable vector of slots of type E, addressed by handles.
//
// The zero value is not usable; create arenas with New.
type Arena[E any] struct {
	slots []E
	used  []bool   // used[h] is true for live slots
	free  []Handle // LIFO list of released slots
	limit int      // maximum number of live slots, 0 for unbounded
}

// New creates an arena. A limit > 0 bounds the number of live slots;
// limit <= 0 means unbounded.
func New[E any](limit int) *Arena[E] {
	if limit < 0 {
		limit = 0
	}
	a := &Arena[E]{limit: limit}
	a.Reset()
	return a
}

// Reset drops all slots, live or free. Every handle issued before becomes invalid.
func (a *Arena[E]) Reset() {
	var zero E
	a.slots = append(a.slots[:0], zero)
	a.used = append(a.used[:0], false)
	a.free = a.free[:0]
}

// Alloc reserves a zeroed slot and returns its handle.
//
// If the arena has reached its limit, Alloc returns Nil and ErrExhausted; the
// arena is not changed in this case.
func (a *Arena[E]) Alloc() (Handle, error) {
	if a.limit > 0 && a.Live() >= a.limit {
		tracer().Debugf("arena: refusing allocation, %d live slots of %d", a.Live(), a.limit)
		return Nil, ErrExhausted
	}
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.used[h] = true
		return h, nil
	}
	if uint64(len(a.slots)) >= maxSlots {
		return Nil, fmt.Errorf("%w: handle space depleted", ErrExhausted)
	}
	var zero E
	a.slots = append(a.slots, zero)
	a.used = append(a.used, true)
	return Handle(len(a.slots) - 1), nil
}

// Free releases a live slot. The slot is zeroed and put on the free list.
//
// Releasing Nil or a slot which is not live is a contract violation and panics.
func (a *Arena[E]) Free(h Handle) {
	assert(h != Nil, "arena: attempt to free the reserved Nil slot")
	assert(int(h) < len(a.slots), "arena: handle out of range")
	assert(a.used[h], "arena: double free of slot")
	var zero E
	a.slots[h] = zero
	a.used[h] = false
	a.free = append(a.free, h)
}

// At returns the address of slot h. At(Nil) addresses the reserved zero slot,
// which clients must not write to.
//
// The address is valid until the next call to Alloc, which may move the slots.
func (a *Arena[E]) At(h Handle) *E {
	assert(int(h) < len(a.slots), "arena: handle out of range")
	return &a.slots[h]
}

// IsLive reports whether h addresses an allocated slot.
func (a *Arena[E]) IsLive(h Handle) bool {
	return h != Nil && int(h) < len(a.slots) && a.used[h]
}

// Live returns the number of allocated slots.
func (a *Arena[E]) Live() int {
	return len(a.slots) - 1 - len(a.free)
}

// Cap returns the number of slots ever grown, live or free.
func (a *Arena[E]) Cap() int {
	return len(a.slots) - 1
}

// Limit returns the maximum number of live slots, 0 meaning unbounded.
func (a *Arena[E]) Limit() int {
	return a.limit
}

// SetLimit changes the maximum number of live slots. A limit smaller than the
// current number of live slots is rejected.
func (a *Arena[E]) SetLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidLimit, limit)
	}
	if limit > 0 && limit < a.Live() {
		return fmt.Errorf("%w: limit %d below %d live slots", ErrInvalidLimit, limit, a.Live())
	}
	a.limit = limit
	return nil
}
