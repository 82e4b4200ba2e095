// Package orchestrator drives one verification job end to end: it consults
// the cache for every method in a translated program, sends only the methods
// that changed to a Backend in a single reduced-program call, merges the
// result with cached hits, updates the cache, and emits the job's report
// stream (spec.md §4.5, §7).
//
// This is the seam the rest of the module exists to serve: fingerprint and
// depgraph decide what changed, locate and verror let a cached error survive
// unrelated edits, cache decides what to keep, backend decides who to ask,
// and report decides what the caller sees. Orchestrator only wires them
// together — it holds no verification logic of its own.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/backend"
	"github.com/veriflux/vericache/cache"
	"github.com/veriflux/vericache/depgraph"
	"github.com/veriflux/vericache/fingerprint"
	"github.com/veriflux/vericache/frontend"
	"github.com/veriflux/vericache/observe"
	"github.com/veriflux/vericache/report"
	"github.com/veriflux/vericache/verror"
)

// Orchestrator is a long-lived coordinator shared across many jobs: it holds
// the backend registry, the cache store, the report sink, and the observer
// every Verify call uses.
type Orchestrator struct {
	Registry *backend.Registry
	Store    cache.Store
	Sink     report.Sink
	Observer observe.Observer

	// fp is shared across jobs so a node's fingerprint is never recomputed
	// once seen — see fingerprint.Fingerprinter's memoization contract.
	fp *fingerprint.Fingerprinter

	// middleware wraps each job in the same span/metric/log instrumentation
	// the rest of this codebase wraps tool calls in, with a job's
	// (backend, file) pair standing in for a tool's (namespace, name).
	middleware *observe.Middleware

	// group collapses concurrent Verify calls for the same (backend, file)
	// pair into a single run: two editors saving the same file at once
	// should not send the same reduced program to a backend twice
	// (spec.md §5).
	group singleflight.Group
}

// New returns an Orchestrator ready to run jobs. It panics if obs cannot
// produce a Middleware — the same failure mode NewObserver itself would
// have already surfaced at startup.
func New(registry *backend.Registry, store cache.Store, sink report.Sink, obs observe.Observer) *Orchestrator {
	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		panic(fmt.Errorf("orchestrator: building observability middleware: %w", err))
	}
	return &Orchestrator{
		Registry:   registry,
		Store:      store,
		Sink:       sink,
		Observer:   obs,
		fp:         fingerprint.New(),
		middleware: mw,
	}
}

// Job describes one verification request.
type Job struct {
	Frontend      frontend.Frontend
	BackendName   string
	BackendConfig map[string]any
}

// Verify runs job to completion, emitting its full report stream and
// returning the terminal error, if any. A non-nil return value means the job
// ended with an ExceptionReport rather than a verification result; a failing
// verification result (methods with errors) is not itself a Go error.
//
// Concurrent Verify calls for the same backend and file collapse into one
// run: the later callers block on the first and share its outcome rather
// than issuing a second, redundant backend call for the same content.
func (o *Orchestrator) Verify(ctx context.Context, job Job) error {
	file := job.Frontend.Config().SourceFile
	meta := observe.ToolMeta{Namespace: job.BackendName, Name: file, Category: "verify"}
	execute := o.middleware.Wrap(func(ctx context.Context, _ observe.ToolMeta, input any) (any, error) {
		return nil, o.runJob(ctx, input.(Job))
	})

	dedupeKey := job.BackendName + "|" + file
	_, err, _ := o.group.Do(dedupeKey, func() (any, error) {
		return execute(ctx, meta, job)
	})
	return err
}

func (o *Orchestrator) runJob(ctx context.Context, job Job) error {
	jobID := uuid.New()
	file := job.Frontend.Config().SourceFile
	logger := o.Observer.Logger().WithTool(observe.ToolMeta{Namespace: job.BackendName, Name: file, Category: "verify"})

	fail := func(kind string, cause error) error {
		msg := cause.Error()
		logger.Error(ctx, msg, observe.Field{Key: "kind", Value: kind}, observe.Field{Key: "job_id", Value: jobID.String()})
		o.Sink.Emit(report.NewExceptionReport(jobID, file, kind, msg))
		o.Sink.Emit(report.NewFinalMarker(jobID, file))
		return fmt.Errorf("orchestrator: %s: %w", kind, cause)
	}

	if job.Frontend.Config().CachingDisabled {
		o.Store.Invalidate(ctx, file)
	}

	if err := job.Frontend.Parse(ctx); err != nil {
		return fail("translator-error", err)
	}
	if err := job.Frontend.Typecheck(ctx); err != nil {
		return fail("translator-error", err)
	}
	if err := job.Frontend.Translate(ctx); err != nil {
		return fail("translator-error", err)
	}

	program := job.Frontend.Program()
	if program == nil {
		return fail("invariant-violation", fmt.Errorf("frontend produced a nil program after a successful translate"))
	}

	o.Sink.Emit(report.NewProgramOutlineReport(jobID, file, program.Outline()))
	o.Sink.Emit(report.NewStatisticsReport(jobID, file, program.Stats()))
	o.Sink.Emit(report.NewProgramDefinitionsReport(jobID, file, program.Definitions()))

	be, err := o.Registry.Create(job.BackendName, job.BackendConfig)
	if err != nil {
		return fail("configuration-error", err)
	}

	plan := o.plan(ctx, be.ID(), file, program, job.Frontend.Config().CachingDisabled)

	logger.Info(ctx, "verification plan built",
		observe.Field{Key: "methods.total", Value: len(program.Methods)},
		observe.Field{Key: "methods.cached", Value: len(plan.cached)},
		observe.Field{Key: "methods.toVerify", Value: len(plan.toVerify)},
	)

	var fresh map[*ast.Method][]verror.LocalizedError
	if len(plan.toVerify) > 0 {
		reduced := program.WithMethods(plan.reducedMethods())
		result, err := be.Verify(ctx, reduced)
		if err != nil {
			return fail("verification-error", fmt.Errorf("backend %q: %w", be.ID(), err))
		}
		fresh, err = o.localizeAndStore(ctx, be.ID(), file, plan, result)
		if err != nil {
			return fail("invariant-violation", err)
		}
		if job.Frontend.Config().CachingDisabled {
			// Drop what localizeAndStore just wrote: this file is uncached.
			o.Store.Invalidate(ctx, file)
		}
	}

	var all []verror.LocalizedError
	for _, errs := range plan.cachedErrors {
		all = append(all, errs...)
	}
	for _, errs := range fresh {
		all = append(all, errs...)
	}

	if len(all) == 0 {
		o.Sink.Emit(report.NewOverallSuccessMessage(jobID, file, be.ID()))
	} else {
		o.Sink.Emit(report.NewOverallFailureMessage(jobID, file, be.ID(), all))
	}
	o.Sink.Emit(report.NewFinalMarker(jobID, file))

	return nil
}

// verificationPlan is the result of consulting the cache for every method in
// a program before a single back-end call is made.
type verificationPlan struct {
	cached       []*ast.Method
	cachedErrors map[*ast.Method][]verror.LocalizedError
	toVerify     []*ast.Method

	fingerprints map[*ast.Method]fingerprint.Hash
	depHashes    map[*ast.Method]fingerprint.Hash
}

// reducedMethods builds the program P′ a backend call actually receives:
// every to-verify method in full, plus every cache hit with its body
// stripped so a to-verify method that calls into it still resolves, without
// asking the backend to re-verify a body the cache already answered for
// (spec.md §4.5 steps 4-5).
func (p verificationPlan) reducedMethods() []*ast.Method {
	out := make([]*ast.Method, 0, len(p.toVerify)+len(p.cached))
	out = append(out, p.toVerify...)
	for _, m := range p.cached {
		out = append(out, m.Signature())
	}
	return out
}

// plan partitions program's methods into those the cache can still answer
// and those that need a fresh backend call, following spec.md §4.3–§4.4: a
// method is served from the cache only if its dependency hash still matches
// and every cached error's access path still resolves against its current
// body (spec.md §8 scenario 6).
func (o *Orchestrator) plan(ctx context.Context, backendID, file string, program *ast.Program, cachingDisabled bool) verificationPlan {
	resolver := depgraph.NewResolver(program, o.fp)

	p := verificationPlan{
		cachedErrors: make(map[*ast.Method][]verror.LocalizedError),
		fingerprints: make(map[*ast.Method]fingerprint.Hash),
		depHashes:    make(map[*ast.Method]fingerprint.Hash),
	}

	for _, m := range program.Methods {
		mfp := o.fp.Fingerprint(m)
		depHash := resolver.DependencyHash(m)
		p.fingerprints[m] = mfp
		p.depHashes[m] = depHash

		if cachingDisabled {
			p.toVerify = append(p.toVerify, m)
			continue
		}

		key := cache.Key{BackendID: backendID, File: file, MethodFingerprint: mfp}
		entry, hit := o.Store.Get(ctx, key)
		if !hit || entry.DependencyHash != depHash {
			p.toVerify = append(p.toVerify, m)
			continue
		}

		relocated, ok := verror.Relocate(entry.Errors, m)
		if !ok {
			// The dependency hash matched but the cached error positions no
			// longer resolve against this method's own body — the body
			// changed in a way the hash alone did not capture. Re-verify.
			p.toVerify = append(p.toVerify, m)
			continue
		}

		p.cached = append(p.cached, m)
		p.cachedErrors[m] = relocated
	}

	return p
}

// localizeAndStore converts a Backend's raw result into per-method
// LocalizedError slices and writes them back to the cache. A Backend is
// expected to report every error against a node that is still reachable
// from the method it belongs to in the reduced program (spec.md §6) — an
// error that localizes against no method in plan.toVerify is an
// invariant-violation.
func (o *Orchestrator) localizeAndStore(
	ctx context.Context,
	backendID, file string,
	plan verificationPlan,
	result backend.Result,
) (map[*ast.Method][]verror.LocalizedError, error) {
	fresh := make(map[*ast.Method][]verror.LocalizedError, len(plan.toVerify))
	for _, m := range plan.toVerify {
		fresh[m] = nil
	}

	for _, ve := range result.Errors {
		owner, le, ok := localizeAgainst(ve, plan.toVerify)
		if !ok {
			return nil, fmt.Errorf("backend %q reported an error that does not belong to any verified method", backendID)
		}
		fresh[owner] = append(fresh[owner], le)
	}

	for _, m := range plan.toVerify {
		key := cache.Key{BackendID: backendID, File: file, MethodFingerprint: plan.fingerprints[m]}
		o.Store.Update(ctx, key, cache.Entry{DependencyHash: plan.depHashes[m], Errors: fresh[m]})
	}

	return fresh, nil
}

// localizeAgainst finds the one method in candidates whose subtree contains
// ve's offending node and localizes ve against it. Node identity is unique
// per method's own subtree, so at most one candidate can succeed.
func localizeAgainst(ve verror.VerificationError, candidates []*ast.Method) (*ast.Method, verror.LocalizedError, bool) {
	for _, m := range candidates {
		if le, ok := ve.Localize(m); ok {
			return m, le, true
		}
	}
	return nil, verror.LocalizedError{}, false
}
