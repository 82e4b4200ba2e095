package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// lruStore bounds memory use by evicting the least-recently-used entry once
// capacity is reached. hashicorp/golang-lru/v2's Cache is already
// concurrency-safe internally, but Invalidate's file-scoped sweep needs its
// own lock so a concurrent Get/Update can't observe a half-swept state.
type lruStore struct {
	mu    sync.Mutex
	cache *lru.Cache[Key, Entry]
}

func newLRUStore(capacity int) (*lruStore, error) {
	c, err := lru.New[Key, Entry](capacity)
	if err != nil {
		return nil, err
	}
	return &lruStore{cache: c}, nil
}

func (s *lruStore) Get(_ context.Context, key Key) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

func (s *lruStore) Update(_ context.Context, key Key, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(key, entry)
}

func (s *lruStore) Invalidate(_ context.Context, file string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.cache.Keys() {
		if k.File == file {
			s.cache.Remove(k)
		}
	}
}

var _ Store = (*lruStore)(nil)
