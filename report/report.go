// Package report defines the typed messages a verification job emits, and
// the Sink contract that consumes them (spec.md §6). The orchestrator never
// talks to a transport directly — only this contract — so the actual
// delivery mechanism (the HTTP/job-server surface, an actor mailbox) stays
// out of scope (spec.md §1).
package report

import (
	"github.com/google/uuid"

	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/verror"
)

// Message is any of the typed reports a job can emit. It is a closed set,
// matched with a type switch by Sink implementations.
type Message interface {
	isMessage()
	JobID() uuid.UUID
}

type base struct {
	ID uuid.UUID
}

func (base) isMessage()         {}
func (b base) JobID() uuid.UUID { return b.ID }

// ProgramOutlineReport carries the program's top-level members, sorted by
// (kind, name), for an editor outline view.
type ProgramOutlineReport struct {
	base
	File    string
	Outline []ast.Node
}

// StatisticsReport carries per-kind member counts.
type StatisticsReport struct {
	base
	File  string
	Stats ast.Statistics
}

// ProgramDefinitionsReport carries every named entity in the program,
// including arguments, returns, locals, domain functions, and axioms.
type ProgramDefinitionsReport struct {
	base
	File        string
	Definitions []ast.Definition
}

// OverallSuccessMessage reports that every method in file verified
// successfully against backend.
type OverallSuccessMessage struct {
	base
	File    string
	Backend string
}

// OverallFailureMessage carries every verification error found for file,
// some of which may be Cached (redisplayed without re-verification).
type OverallFailureMessage struct {
	base
	File    string
	Backend string
	Errors  []verror.LocalizedError
}

// ExceptionReport carries a job-terminating error: configuration-error,
// translator-error, verification-error (the back-end call itself returned
// an error), or invariant-violation (spec.md §7). A cache entry whose access
// paths no longer resolve is re-verified rather than reported here. Unlike
// OverallFailureMessage, this is not a verification result — the job got no
// result from a back end, or the pipeline itself broke.
type ExceptionReport struct {
	base
	File    string
	Kind    string
	Message string
}

// FinalMarker closes a job's report stream. Exactly one is emitted per job,
// after either a verification result or an ExceptionReport.
type FinalMarker struct {
	base
	File string
}

// Sink is the fire-and-forget contract a job emits Messages to.
// Implementations must be safe for concurrent use — jobs for different
// (backend, file) pairs emit concurrently (spec.md §5).
type Sink interface {
	Emit(msg Message)
}

// base is unexported, so callers outside this package build messages through
// these constructors rather than a struct literal.

func NewProgramOutlineReport(jobID uuid.UUID, file string, outline []ast.Node) ProgramOutlineReport {
	return ProgramOutlineReport{base: base{ID: jobID}, File: file, Outline: outline}
}

func NewStatisticsReport(jobID uuid.UUID, file string, stats ast.Statistics) StatisticsReport {
	return StatisticsReport{base: base{ID: jobID}, File: file, Stats: stats}
}

func NewProgramDefinitionsReport(jobID uuid.UUID, file string, defs []ast.Definition) ProgramDefinitionsReport {
	return ProgramDefinitionsReport{base: base{ID: jobID}, File: file, Definitions: defs}
}

func NewOverallSuccessMessage(jobID uuid.UUID, file, backendName string) OverallSuccessMessage {
	return OverallSuccessMessage{base: base{ID: jobID}, File: file, Backend: backendName}
}

func NewOverallFailureMessage(jobID uuid.UUID, file, backendName string, errs []verror.LocalizedError) OverallFailureMessage {
	return OverallFailureMessage{base: base{ID: jobID}, File: file, Backend: backendName, Errors: errs}
}

func NewExceptionReport(jobID uuid.UUID, file, kind, message string) ExceptionReport {
	return ExceptionReport{base: base{ID: jobID}, File: file, Kind: kind, Message: message}
}

func NewFinalMarker(jobID uuid.UUID, file string) FinalMarker {
	return FinalMarker{base: base{ID: jobID}, File: file}
}
