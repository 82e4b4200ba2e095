// Package backend defines the contract a verification back end implements,
// and a registry for constructing one from configuration by name (spec.md
// §6, §9 "Dynamic backend resolution").
package backend

import (
	"context"

	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/verror"
)

// Result is what Verify returns for a reduced program: the errors the
// back end found, one per failure. An empty slice means every method in the
// program verified successfully.
type Result struct {
	Errors []verror.VerificationError
}

// Success reports whether the back end found no errors.
func (r Result) Success() bool { return len(r.Errors) == 0 }

// Backend is the contract consumed by the orchestrator: only the verify
// call itself, never the back end's own internals (spec.md §1 scope note —
// "only their verify(program) → result contract is consumed").
type Backend interface {
	// ID identifies this backend instance, used as part of the cache key.
	ID() string

	// Verify checks program and returns every failure found. The call may
	// block for an arbitrary duration; callers wrap it with a timeout.
	Verify(ctx context.Context, program *ast.Program) (Result, error)

	// Stop releases any resources (subprocess, connection pool) held by
	// this backend instance.
	Stop(ctx context.Context) error
}
