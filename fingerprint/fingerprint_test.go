package fingerprint

import (
	"testing"

	"github.com/veriflux/vericache/ast"
)

func method(name string, body ast.Node) *ast.Method {
	return &ast.Method{
		MethodName: name,
		Position:   ast.Position{Line: 1},
		Body:       &ast.Seqn{Stmts: []ast.Node{body}},
	}
}

// TestIdenticalSubtreesHashEqual covers I1/T1's prerequisite: structurally
// identical methods fingerprint equal even when built as distinct node
// instances.
func TestIdenticalSubtreesHashEqual(t *testing.T) {
	f := New()
	a := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: true}})
	b := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: true}})

	if f.Fingerprint(a) != f.Fingerprint(b) {
		t.Fatal("structurally identical methods must fingerprint equal")
	}
}

// TestPositionIndependence covers T2: fingerprint is unchanged by edits to
// position only.
func TestPositionIndependence(t *testing.T) {
	f := New()
	a := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: true}, Position: ast.Position{Line: 5}})
	b := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: true}, Position: ast.Position{Line: 500}})
	b.Position = ast.Position{Line: 42}

	if f.Fingerprint(a) != f.Fingerprint(b) {
		t.Fatal("fingerprint must be invariant under position-only edits")
	}
}

func TestDifferentBodyHashesDiffer(t *testing.T) {
	f := New()
	a := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: true}})
	b := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: false}})

	if f.Fingerprint(a) == f.Fingerprint(b) {
		t.Fatal("methods with different bodies must fingerprint differently")
	}
}

func TestDifferentNamesHashDiffer(t *testing.T) {
	f := New()
	a := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: true}})
	b := method("bar", &ast.Assert{Expr: &ast.BoolLit{Value: true}})

	if f.Fingerprint(a) == f.Fingerprint(b) {
		t.Fatal("methods with different names must fingerprint differently")
	}
}

func TestMemoizationReturnsSameHashForSameNode(t *testing.T) {
	f := New()
	m := method("foo", &ast.Assert{Expr: &ast.BoolLit{Value: true}})

	h1 := f.Fingerprint(m)
	h2 := f.Fingerprint(m)
	if h1 != h2 {
		t.Fatal("memoized fingerprint must be stable across calls")
	}
}

func TestNilNodeIsZeroHash(t *testing.T) {
	f := New()
	if !f.Fingerprint(nil).IsZero() {
		t.Fatal("Fingerprint(nil) must be the zero hash")
	}
}

func TestChildOrderMatters(t *testing.T) {
	f := New()
	a := &ast.BinExpr{Op: "-", Left: &ast.IntLit{Value: 1}, Right: &ast.IntLit{Value: 2}}
	b := &ast.BinExpr{Op: "-", Left: &ast.IntLit{Value: 2}, Right: &ast.IntLit{Value: 1}}

	if f.Fingerprint(a) == f.Fingerprint(b) {
		t.Fatal("swapping non-commutative operand order must change the fingerprint")
	}
}
