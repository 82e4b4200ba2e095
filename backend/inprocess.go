package backend

import (
	"context"
	"fmt"

	"github.com/veriflux/vericache/ast"
)

func init() {
	_ = DefaultRegistry.Register("inprocess", newInProcessFromConfig)
}

// VerifyFunc is the shape an in-process backend wraps directly — no
// transport, no serialization. Used for embedding a real solver linked into
// the same process, and for tests.
type VerifyFunc func(ctx context.Context, program *ast.Program) (Result, error)

type inProcessBackend struct {
	id     string
	verify VerifyFunc
}

// NewInProcess builds a Backend that calls verify directly.
func NewInProcess(id string, verify VerifyFunc) Backend {
	return &inProcessBackend{id: id, verify: verify}
}

func (b *inProcessBackend) ID() string { return b.id }

func (b *inProcessBackend) Verify(ctx context.Context, p *ast.Program) (Result, error) {
	return b.verify(ctx, p)
}

func (b *inProcessBackend) Stop(context.Context) error { return nil }

// newInProcessFromConfig lets the registry construct an in-process backend
// from cfg["verify"], for callers that only have backend names/config
// (rather than a direct NewInProcess call) — e.g. a test harness building
// every backend uniformly through Registry.Create.
func newInProcessFromConfig(cfg map[string]any) (Backend, error) {
	fn, ok := cfg["verify"].(VerifyFunc)
	if !ok {
		return nil, fmt.Errorf(`backend: inprocess factory requires cfg["verify"] of type backend.VerifyFunc`)
	}
	id, _ := cfg["id"].(string)
	if id == "" {
		id = "inprocess"
	}
	return NewInProcess(id, fn), nil
}

var _ Backend = (*inProcessBackend)(nil)
