package cache

import (
	"context"

	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/fingerprint"
	"github.com/veriflux/vericache/verror"
)

// VerifyFunc performs fresh verification for a method that could not be
// served from the cache.
type VerifyFunc func(ctx context.Context) ([]verror.LocalizedError, error)

// Consult is the cache-first pattern for verifying a single method in
// isolation: on a hit whose dependency hash still matches and whose cached
// access paths still resolve against methodRoot, it returns the relocated
// cached errors without calling verify; otherwise it calls verify and, on
// success, updates store with the fresh result.
//
// The orchestrator's batched pipeline (spec.md §4.5 steps 2–4) needs to
// determine every method's hit/miss status before issuing a single back-end
// call over the reduced program, so it applies this same hit-validation
// logic directly rather than through Consult's per-call verify closure.
// Consult is for callers that verify one method per back-end call — a
// simpler embedding this module's tests exercise directly.
//
// The returned bool reports whether the result came from the cache.
func Consult(
	ctx context.Context,
	store Store,
	key Key,
	dependencyHash fingerprint.Hash,
	methodRoot ast.Node,
	verify VerifyFunc,
) ([]verror.LocalizedError, bool, error) {
	if entry, ok := store.Get(ctx, key); ok && entry.DependencyHash == dependencyHash {
		if relocated, ok := verror.Relocate(entry.Errors, methodRoot); ok {
			return relocated, true, nil
		}
		// Access-path failure: the AST diverged from what the matching
		// dependency hash predicted. Fall through and re-verify rather than
		// serve a result that can no longer be located (spec.md §8 scenario 6).
	}

	errs, err := verify(ctx)
	if err != nil {
		return nil, false, err
	}

	store.Update(ctx, key, Entry{DependencyHash: dependencyHash, Errors: errs})
	return errs, false, nil
}
