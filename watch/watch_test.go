package watch

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/rbtree/omap"
	"github.com/stretchr/testify/require"
)

func receive[K, V any](t *testing.T, ch <-chan Event[K, V]) Event[K, V] {
	t.Helper()
	select {
	case e, ok := <-ch:
		require.True(t, ok, "subscription closed unexpectedly")
		return e
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for event")
	}
	return Event[K, V]{}
}

func TestEventsFollowMutations(t *testing.T) {
	r := require.New(t)
	w := New(omap.NewOrdered[string, int]())
	defer w.Close()
	events, err := w.Subscribe(context.Background(), 16)
	r.NoError(err)

	r.NoError(w.Put("a", 1))
	r.NoError(w.Put("b", 2))
	r.NoError(w.Put("a", 3))
	r.True(w.Delete("b"))
	r.False(w.Delete("zzz"), "absent keys publish nothing")

	want := []Event[string, int]{
		{Op: OpInsert, Key: "a", Value: 1},
		{Op: OpInsert, Key: "b", Value: 2},
		{Op: OpUpdate, Key: "a", Value: 3},
		{Op: OpDelete, Key: "b", Value: 2},
	}
	for _, e := range want {
		r.Equal(e, receive(t, events))
	}
	r.Equal(1, w.Len())
	v, ok := w.Get("a")
	r.True(ok)
	r.Equal(3, v)
	r.NoError(w.Map().Check())
}

func TestCloseEndsSubscriptions(t *testing.T) {
	r := require.New(t)
	w := New(omap.NewOrdered[int, int]())
	events, err := w.Subscribe(context.Background(), 4)
	r.NoError(err)
	w.Close()
	select {
	case _, ok := <-events:
		r.False(ok, "expected subscription to be closed")
	case <-time.After(2 * time.Second):
		t.Fatalf("subscription not closed after Close")
	}
	_, err = w.Subscribe(context.Background(), 4)
	r.ErrorIs(err, ErrClosed)
	r.NoError(w.Put(1, 1), "map stays usable after Close")
	r.Equal(1, w.Len())
}

func TestSubscribeAfterClose(t *testing.T) {
	r := require.New(t)
	w := New(omap.NewOrdered[string, string]())
	w.Close()
	events, err := w.Subscribe(context.Background(), 1)
	r.ErrorIs(err, ErrClosed)
	r.Nil(events)
}

func TestCancelledSubscription(t *testing.T) {
	r := require.New(t)
	w := New(omap.NewOrdered[int, int]())
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	events, err := w.Subscribe(ctx, 4)
	r.NoError(err)
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("subscription not closed after cancellation")
		}
	}
}

func TestOpString(t *testing.T) {
	require.Equal(t, "insert", OpInsert.String())
	require.Equal(t, "update", OpUpdate.String())
	require.Equal(t, "delete", OpDelete.String())
	require.Equal(t, "unknown", Op(0).String())
}
