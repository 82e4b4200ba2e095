// Package ast defines the abstract syntax tree consumed by the verification
// cache. The front-end (parser/type-checker/translator) that produces this
// tree is an external collaborator; this package only models its shape.
package ast

import "fmt"

// Position locates a node in source text. A Position with Line == 0 carries
// no line/column information — the back-end error-handling design in
// orchestrator treats such positions as a programming error from the
// back-end, never from the cache itself.
type Position struct {
	File      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// HasLineInfo reports whether p identifies a concrete line.
func (p Position) HasLineInfo() bool {
	return p.Line > 0
}

// Within reports whether p's start line falls inside [start, end] inclusive.
func (p Position) Within(start, end int) bool {
	return p.HasLineInfo() && p.Line >= start && p.Line <= end
}

func (p Position) String() string {
	if !p.HasLineInfo() {
		return "<no position>"
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
