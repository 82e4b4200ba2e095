package cache

import (
	"context"
	"testing"

	"github.com/veriflux/vericache/fingerprint"
	"github.com/veriflux/vericache/verror"
)

func testKey(backend, file string, fp byte) Key {
	var h fingerprint.Hash
	h[0] = fp
	return Key{BackendID: backend, File: file, MethodFingerprint: h}
}

func TestUnboundedStoreGetMiss(t *testing.T) {
	s := newUnboundedStore()
	if _, ok := s.Get(context.Background(), testKey("z3", "a.vpr", 1)); ok {
		t.Fatal("expected miss on empty store")
	}
}

func TestUnboundedStoreUpdateThenGet(t *testing.T) {
	s := newUnboundedStore()
	ctx := context.Background()
	key := testKey("z3", "a.vpr", 1)
	entry := Entry{Errors: []verror.LocalizedError{{Kind: verror.KindAssertFailed}}}

	s.Update(ctx, key, entry)
	got, ok := s.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Update")
	}
	if len(got.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(got.Errors))
	}
}

func TestUnboundedStoreInvalidateScopesToFile(t *testing.T) {
	s := newUnboundedStore()
	ctx := context.Background()
	keyA := testKey("z3", "a.vpr", 1)
	keyB := testKey("z3", "b.vpr", 1)
	s.Update(ctx, keyA, Entry{})
	s.Update(ctx, keyB, Entry{})

	s.Invalidate(ctx, "a.vpr")

	if _, ok := s.Get(ctx, keyA); ok {
		t.Fatal("expected a.vpr's entry to be invalidated")
	}
	if _, ok := s.Get(ctx, keyB); !ok {
		t.Fatal("expected b.vpr's entry to survive a.vpr's invalidation")
	}
}

func TestLRUStoreEvictsLeastRecentlyUsed(t *testing.T) {
	s, err := newLRUStore(2)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	k1, k2, k3 := testKey("z3", "a.vpr", 1), testKey("z3", "a.vpr", 2), testKey("z3", "a.vpr", 3)

	s.Update(ctx, k1, Entry{})
	s.Update(ctx, k2, Entry{})
	s.Get(ctx, k1) // touch k1 so k2 becomes the LRU entry
	s.Update(ctx, k3, Entry{})

	if _, ok := s.Get(ctx, k2); ok {
		t.Fatal("expected k2 to be evicted as least-recently-used")
	}
	if _, ok := s.Get(ctx, k1); !ok {
		t.Fatal("expected k1 to survive (recently touched)")
	}
	if _, ok := s.Get(ctx, k3); !ok {
		t.Fatal("expected k3 to survive (just inserted)")
	}
}

func TestLRUStoreInvalidateScopesToFile(t *testing.T) {
	s, err := newLRUStore(10)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	keyA := testKey("z3", "a.vpr", 1)
	keyB := testKey("z3", "b.vpr", 1)
	s.Update(ctx, keyA, Entry{})
	s.Update(ctx, keyB, Entry{})

	s.Invalidate(ctx, "a.vpr")

	if _, ok := s.Get(ctx, keyA); ok {
		t.Fatal("expected a.vpr's entry to be invalidated")
	}
	if _, ok := s.Get(ctx, keyB); !ok {
		t.Fatal("expected b.vpr's entry to survive")
	}
}

func TestNewStoreUnboundedByDefault(t *testing.T) {
	s, err := NewStore(Unbounded())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*unboundedStore); !ok {
		t.Fatalf("expected *unboundedStore, got %T", s)
	}
}

func TestNewStoreLRU(t *testing.T) {
	s, err := NewStore(LRU(4))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*lruStore); !ok {
		t.Fatalf("expected *lruStore, got %T", s)
	}
}
