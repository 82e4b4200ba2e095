// Package verror defines the taxonomy of verification errors a back end can
// report against a method, and the bookkeeping needed to redisplay a cached
// error against a freshly edited program (spec.md §5, §6).
//
// Each error variant wraps a location-independent Template (the back end's
// message, already parameterized — e.g. "assertion might not hold") plus two
// access paths: one to the node the error is attached to, and one to the
// node explaining why (a failing precondition's own expression, a loop
// invariant, ...). Both paths are resolved against the current AST with
// package locate before the error is displayed, which is what lets a
// Cached error survive small, unrelated edits elsewhere in the file.
package verror

import (
	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/locate"
)

// Kind tags every verification error variant a back end can report.
type Kind int

const (
	KindInvalid Kind = iota
	KindAssignmentFailed
	KindCallFailed
	KindPreconditionViolated
	KindPostconditionViolated
	KindInvariantNotPreserved
	KindInvariantNotEstablished
	KindFoldFailed
	KindUnfoldFailed
	KindPackageFailed
	KindApplyFailed
	KindAssertFailed
	KindInhaleFailed
	KindExhaleFailed
	KindTerminationFailed
	KindWellFormedness
	KindHeuristicsFailed
	KindInternal
)

var kindNames = map[Kind]string{
	KindInvalid:                 "Invalid",
	KindAssignmentFailed:        "AssignmentFailed",
	KindCallFailed:              "CallFailed",
	KindPreconditionViolated:    "PreconditionViolated",
	KindPostconditionViolated:   "PostconditionViolated",
	KindInvariantNotPreserved:   "InvariantNotPreserved",
	KindInvariantNotEstablished: "InvariantNotEstablished",
	KindFoldFailed:              "FoldFailed",
	KindUnfoldFailed:            "UnfoldFailed",
	KindPackageFailed:           "PackageFailed",
	KindApplyFailed:             "ApplyFailed",
	KindAssertFailed:            "AssertFailed",
	KindInhaleFailed:            "InhaleFailed",
	KindExhaleFailed:            "ExhaleFailed",
	KindTerminationFailed:       "TerminationFailed",
	KindWellFormedness:          "WellFormedness",
	KindHeuristicsFailed:        "HeuristicsFailed",
	KindInternal:                "Internal",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// CounterExample carries an optional model a back end returned alongside an
// error — an opaque, back-end-specific rendering (spec.md §5 non-goal: this
// package does not interpret it).
type CounterExample struct {
	Backend string
	Model   string
}

// VerificationError is what a Backend reports for a single failure: it
// points at the actual offending and reason nodes of the program the back
// end was given, by identity. The orchestrator turns this into a
// LocalizedError (access paths, not live node references) before it is
// cached or handed to a report.Sink, since a VerificationError's node
// pointers are only valid for the lifetime of the program that produced
// them.
type VerificationError struct {
	Kind           Kind
	Template       string
	Offending      ast.Node
	Reason         ast.Node // equal to Offending if the back end gives no finer reason
	CounterExample *CounterExample
}

// Localize resolves e's node references into access paths relative to
// methodRoot, producing the form stored in the cache and sent to a
// report.Sink. It reports false if either node is unreachable from
// methodRoot — which signals a back end that returned a node from a
// different program than the one it was asked to verify.
func (e VerificationError) Localize(methodRoot ast.Node) (LocalizedError, bool) {
	offendingPath, ok := locate.AccessPathTo(methodRoot, e.Offending)
	if !ok {
		return LocalizedError{}, false
	}
	reasonPath, ok := locate.AccessPathTo(methodRoot, e.Reason)
	if !ok {
		return LocalizedError{}, false
	}
	var method string
	if named, ok := methodRoot.(ast.Named); ok {
		method = named.Name()
	}
	return LocalizedError{
		Kind:           e.Kind,
		Template:       e.Template,
		Method:         method,
		Position:       detachedPosition(e.Offending),
		ReasonPosition: detachedPosition(e.Reason),
		OffendingPath:  offendingPath,
		ReasonPath:     reasonPath,
		CounterExample: e.CounterExample,
	}, true
}

// LocalizedError is one verification failure reported against a method.
//
// Template is the back end's message with any location-independent
// parameters already substituted; it never embeds a line/column, so it
// survives unchanged across edits. OffendingPath addresses the AST node the
// error decorates (e.g. the failing assert statement); ReasonPath addresses
// the node explaining why (e.g. the specific conjunct of a precondition that
// didn't hold) and is equal to OffendingPath when the back end gives no
// finer-grained reason. Method names the enclosing method, since a report
// merges errors from every method a job touched.
//
// Position and ReasonPosition are the current line/column of the offending
// and reason nodes — this is what "rewrites the cached error's position"
// means in practice: Localize sets them from a fresh VerificationError's
// live nodes, and Relocate overwrites them again from wherever the access
// paths resolve in the edited program, so a redisplayed cached error always
// points at where the code is now, not where it was when first verified.
//
// Cached records whether this error was redisplayed from a previous run
// rather than freshly produced; it is informational only (e.g. for a "stale"
// UI indicator) and never affects equality or re-verification decisions.
type LocalizedError struct {
	Kind           Kind
	Template       string
	Method         string
	Position       ast.Position
	ReasonPosition ast.Position
	OffendingPath  locate.AccessPath
	ReasonPath     locate.AccessPath
	CounterExample *CounterExample
	Cached         bool
}

// SetCached returns a copy of e with Cached set to cached. It is idempotent:
// calling it twice with the same value is equivalent to calling it once
// (spec.md §8 scenario T5).
func (e LocalizedError) SetCached(cached bool) LocalizedError {
	e.Cached = cached
	return e
}
