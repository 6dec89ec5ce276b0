package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type slot struct {
	value int
	next  Handle
}

func TestAllocNeverReturnsNil(t *testing.T) {
	r := require.New(t)
	a := New[slot](0)
	for i := 0; i < 10; i++ {
		h, err := a.Alloc()
		r.NoError(err)
		r.NotEqual(Nil, h)
		r.Equal(Handle(i+1), h)
	}
	r.Equal(10, a.Live())
	r.Equal(10, a.Cap())
}

func TestFreedSlotsAreReusedAndZeroed(t *testing.T) {
	r := require.New(t)
	a := New[slot](0)
	h1, _ := a.Alloc()
	h2, _ := a.Alloc()
	a.At(h1).value = 42
	a.At(h1).next = h2
	a.Free(h1)
	r.False(a.IsLive(h1))
	r.Equal(1, a.Live())

	h3, err := a.Alloc()
	r.NoError(err)
	r.Equal(h1, h3, "expected LIFO reuse of freed slot")
	r.Equal(slot{}, *a.At(h3))
	r.Equal(2, a.Cap(), "reuse must not grow the arena")
}

func TestNilSlotReadsAsZero(t *testing.T) {
	r := require.New(t)
	a := New[slot](0)
	r.Equal(slot{}, *a.At(Nil))
	h, _ := a.Alloc()
	a.At(h).value = 7
	r.Equal(slot{}, *a.At(Nil))
	r.False(a.IsLive(Nil))
}

func TestLimitIsEnforcedAtomically(t *testing.T) {
	r := require.New(t)
	a := New[slot](2)
	_, err := a.Alloc()
	r.NoError(err)
	h, err := a.Alloc()
	r.NoError(err)
	_, err = a.Alloc()
	r.True(errors.Is(err, ErrExhausted))
	r.Equal(2, a.Live())
	r.Equal(2, a.Cap())

	a.Free(h)
	_, err = a.Alloc()
	r.NoError(err, "freeing a slot must make room again")
}

func TestSetLimit(t *testing.T) {
	r := require.New(t)
	a := New[slot](0)
	for i := 0; i < 3; i++ {
		_, err := a.Alloc()
		r.NoError(err)
	}
	r.ErrorIs(a.SetLimit(2), ErrInvalidLimit)
	r.ErrorIs(a.SetLimit(-1), ErrInvalidLimit)
	r.NoError(a.SetLimit(3))
	_, err := a.Alloc()
	r.ErrorIs(err, ErrExhausted)
	r.NoError(a.SetLimit(0))
	_, err = a.Alloc()
	r.NoError(err)
}

func TestFreeContractViolationsPanic(t *testing.T) {
	r := require.New(t)
	a := New[slot](0)
	r.Panics(func() { a.Free(Nil) })
	h, _ := a.Alloc()
	a.Free(h)
	r.Panics(func() { a.Free(h) })
	r.Panics(func() { a.At(Handle(99)) })
}

func TestReset(t *testing.T) {
	r := require.New(t)
	a := New[slot](0)
	for i := 0; i < 5; i++ {
		a.Alloc()
	}
	a.Reset()
	r.Equal(0, a.Live())
	r.Equal(0, a.Cap())
	h, err := a.Alloc()
	r.NoError(err)
	r.Equal(Handle(1), h)
}
