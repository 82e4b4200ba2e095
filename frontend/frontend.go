// Package frontend defines the contract the orchestrator consumes for
// parsing, typechecking, and translating a source file into an ast.Program
// (spec.md §6). Only this contract is consumed — the actual parser,
// typechecker, and translator are out of scope (spec.md §1).
package frontend

import (
	"context"

	"github.com/veriflux/vericache/ast"
)

// Config describes one source file's translation session.
type Config struct {
	SourceFile string

	// CachingDisabled, when true, tells the orchestrator to bypass the
	// cache store entirely for this file's job — every method is verified
	// fresh and no entries are written (spec.md §9 design note).
	CachingDisabled bool
}

// Frontend drives a source file from text to a translated ast.Program. Each
// stage may fail independently; the orchestrator stops the job and reports
// a translator-error on the first failure (spec.md §7).
type Frontend interface {
	Parse(ctx context.Context) error
	Typecheck(ctx context.Context) error
	Translate(ctx context.Context) error

	// Program returns the translated program. Valid only after Translate
	// has succeeded.
	Program() *ast.Program

	Config() Config
}
