package rbtree

import (
	"math/rand"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	keys := rnd.Perm(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t := NewOrdered[int]()
		for _, k := range keys {
			if _, err := t.Insert(k); err != nil {
				b.Fatalf("insert failed: %v", err)
			}
		}
	}
}

func BenchmarkInsertRemoveSharedArena(b *testing.B) {
	rnd := rand.New(rand.NewSource(2))
	keys := rnd.Perm(1 << 12)
	t, err := New(Config[int]{Less: Less[int], Arena: NewArena[int](len(keys))})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			if _, err := t.Insert(k); err != nil {
				b.Fatalf("insert failed: %v", err)
			}
		}
		for _, k := range keys {
			t.RemoveValue(k)
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	const n = 1 << 14
	t := NewOrdered[int]()
	for _, k := range rand.New(rand.NewSource(3)).Perm(n) {
		if _, err := t.Insert(k); err != nil {
			b.Fatalf("setup failed: %v", err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if t.Lookup(i % n).IsEnd() {
			b.Fatalf("key %d not found", i%n)
		}
	}
}
