package health

import (
	"context"
	"fmt"

	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/backend"
	"github.com/veriflux/vericache/cache"
)

// BackendChecker reports whether a registered verification backend is still
// answering. It verifies the empty program — every backend must accept that
// trivially and return success, so any error or panic is the backend itself,
// not anything about the request.
type BackendChecker struct {
	name string
	be   backend.Backend
}

// NewBackendChecker wraps be as a Checker named after its ID.
func NewBackendChecker(be backend.Backend) *BackendChecker {
	return &BackendChecker{name: "backend." + be.ID(), be: be}
}

func (c *BackendChecker) Name() string { return c.name }

func (c *BackendChecker) Check(ctx context.Context) Result {
	result, err := c.be.Verify(ctx, &ast.Program{})
	if err != nil {
		return Unhealthy(fmt.Sprintf("backend %q: verify failed", c.be.ID()), err)
	}
	if !result.Success() {
		// An empty program reporting errors means the backend is
		// misbehaving, not that verification legitimately failed.
		return Degraded(fmt.Sprintf("backend %q: reported errors for an empty program", c.be.ID()))
	}
	return Healthy(fmt.Sprintf("backend %q is responding", c.be.ID()))
}

var _ Checker = (*BackendChecker)(nil)

// StoreChecker reports whether a cache.Store is still serving reads and
// writes, by round-tripping a throwaway entry under a reserved file name
// that Invalidate cleans up afterward.
type StoreChecker struct {
	store cache.Store
}

// NewStoreChecker wraps store as a Checker.
func NewStoreChecker(store cache.Store) *StoreChecker {
	return &StoreChecker{store: store}
}

func (c *StoreChecker) Name() string { return "cache.store" }

func (c *StoreChecker) Check(ctx context.Context) Result {
	const probeFile = "\x00health-probe"
	key := cache.Key{BackendID: "health", File: probeFile}
	defer c.store.Invalidate(ctx, probeFile)

	c.store.Update(ctx, key, cache.Entry{})
	if _, ok := c.store.Get(ctx, key); !ok {
		return Unhealthy("cache store did not return a just-written probe entry", ErrCheckFailed)
	}
	return Healthy("cache store is serving reads and writes")
}

var _ Checker = (*StoreChecker)(nil)
