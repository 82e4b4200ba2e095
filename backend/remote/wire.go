package remote

import (
	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/backend"
	"github.com/veriflux/vericache/verror"
)

// wireResult is the JSON shape an external solver service responds with.
// Unlike an in-process backend, a remote service cannot share Go node
// pointers with the caller, so it reports failures by (method, line,
// column) instead; wireResult.toResult resolves each one back to the
// actual node at that position in the program the caller sent.
type wireResult struct {
	Errors []wireError `json:"errors"`
}

type wireError struct {
	Kind            string `json:"kind"`
	Template        string `json:"template"`
	Method          string `json:"method"`
	OffendingLine   int    `json:"offendingLine"`
	OffendingColumn int    `json:"offendingColumn"`
	ReasonLine      int    `json:"reasonLine"`
	ReasonColumn    int    `json:"reasonColumn"`
	CounterExample  string `json:"counterExample,omitempty"`
}

var wireKinds = map[string]verror.Kind{
	"assignment-failed":          verror.KindAssignmentFailed,
	"call-failed":                verror.KindCallFailed,
	"precondition-violated":      verror.KindPreconditionViolated,
	"postcondition-violated":     verror.KindPostconditionViolated,
	"invariant-not-preserved":    verror.KindInvariantNotPreserved,
	"invariant-not-established":  verror.KindInvariantNotEstablished,
	"fold-failed":                verror.KindFoldFailed,
	"unfold-failed":              verror.KindUnfoldFailed,
	"package-failed":             verror.KindPackageFailed,
	"apply-failed":               verror.KindApplyFailed,
	"assert-failed":              verror.KindAssertFailed,
	"inhale-failed":              verror.KindInhaleFailed,
	"exhale-failed":              verror.KindExhaleFailed,
	"termination-failed":         verror.KindTerminationFailed,
	"well-formedness":            verror.KindWellFormedness,
	"heuristics-failed":          verror.KindHeuristicsFailed,
	"internal":                   verror.KindInternal,
}

// resolve turns w into a verror.VerificationError by locating the nodes at
// its reported positions within program. It returns false if the named
// method or its offending position cannot be found — the caller treats this
// as an internal error rather than silently dropping the finding. A reason
// position that matches no node falls back to the offending node.
func (w wireError) resolve(program *ast.Program) (verror.VerificationError, bool) {
	m := program.MethodByName(w.Method)
	if m == nil {
		return verror.VerificationError{}, false
	}

	offending, ok := nodeAt(m, w.OffendingLine, w.OffendingColumn)
	if !ok {
		return verror.VerificationError{}, false
	}
	reason, ok := nodeAt(m, w.ReasonLine, w.ReasonColumn)
	if !ok {
		reason = offending
	}

	var ce *verror.CounterExample
	if w.CounterExample != "" {
		ce = &verror.CounterExample{Backend: "remote", Model: w.CounterExample}
	}

	return verror.VerificationError{
		Kind:           wireKinds[w.Kind],
		Template:       w.Template,
		Offending:      offending,
		Reason:         reason,
		CounterExample: ce,
	}, true
}

// nodeAt returns the smallest node under root whose own position matches
// (line, column) exactly, preferring the deepest match found during a
// pre-order walk.
func nodeAt(root ast.Node, line, column int) (ast.Node, bool) {
	var best ast.Node
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		pos := n.Pos()
		if pos.Line == line && pos.Column == column {
			best = n
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return best, best != nil
}

func (w wireResult) toResult(program *ast.Program) backend.Result {
	errs := make([]verror.VerificationError, 0, len(w.Errors))
	for _, e := range w.Errors {
		ve, ok := e.resolve(program)
		if !ok {
			// Kept as a node-less internal error, which no method's subtree
			// contains, so the orchestrator reports an invariant-violation.
			ve = verror.VerificationError{Kind: verror.KindInternal, Template: e.Template}
		}
		errs = append(errs, ve)
	}
	return backend.Result{Errors: errs}
}
