// Package cache stores, per (backend, file, method) triple, the most recent
// dependency hash and verification errors so that an unchanged method never
// needs to be re-verified (spec.md §4.4).
package cache

import (
	"context"
	"errors"

	"github.com/veriflux/vericache/fingerprint"
	"github.com/veriflux/vericache/verror"
)

// ErrNilStore reports a missing Store. NewStore never returns it: a
// non-positive capacity selects the unbounded store.
var ErrNilStore = errors.New("cache: store is nil")

// Key identifies one cache entry: a method, identified by its own
// fingerprint, within a file, as seen by one backend. Different backends
// never share entries — spec.md §3 treats backend identity as part of the
// key precisely because two backends can disagree about the same method.
type Key struct {
	BackendID         string
	File              string
	MethodFingerprint fingerprint.Hash
}

// Entry is what Store holds for a Key: the dependency hash recorded at the
// time of caching, and the errors the backend reported.
type Entry struct {
	DependencyHash fingerprint.Hash
	Errors         []verror.LocalizedError
}

// Store is the cache contract. Get reports a miss as (Entry{}, false) rather
// than an error, so a miss is never mistaken for a store failure (spec.md
// §4.4). Update replaces any existing entry for key atomically — callers
// never observe a partially written entry (spec.md §5).
type Store interface {
	Get(ctx context.Context, key Key) (Entry, bool)
	Update(ctx context.Context, key Key, entry Entry)

	// Invalidate drops every entry for file, across all backends. Used when
	// a frontend reports CachingDisabled for a file.
	Invalidate(ctx context.Context, file string)
}
