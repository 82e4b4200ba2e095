package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/veriflux/vericache/ast"
)

func TestVerifySuccessDecodesEmptyErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(wireResult{})
	}))
	defer srv.Close()

	b := New(Config{ID: "z3", Endpoint: srv.URL})
	result, err := b.Verify(context.Background(), &ast.Program{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Success() {
		t.Fatal("expected an empty error list to report success")
	}
}

func TestVerifyResolvesOffendingNodeByPosition(t *testing.T) {
	assertNode := &ast.Assert{Expr: &ast.BoolLit{Value: true}, Position: ast.Position{Line: 10, Column: 3}}
	method := &ast.Method{
		MethodName: "foo",
		Body:       &ast.Seqn{Stmts: []ast.Node{assertNode}},
	}
	program := &ast.Program{Methods: []*ast.Method{method}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(wireResult{Errors: []wireError{{
			Kind: "assert-failed", Template: "assertion might not hold",
			Method: "foo", OffendingLine: 10, OffendingColumn: 3, ReasonLine: 10, ReasonColumn: 3,
		}}})
	}))
	defer srv.Close()

	b := New(Config{ID: "z3", Endpoint: srv.URL})
	result, err := b.Verify(context.Background(), program)
	if err != nil {
		t.Fatal(err)
	}
	if result.Success() {
		t.Fatal("expected one error")
	}
	if result.Errors[0].Offending != ast.Node(assertNode) {
		t.Fatal("expected the offending node to resolve to the actual Assert instance")
	}
}

func TestVerifyNonOKStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := New(Config{ID: "z3", Endpoint: srv.URL, MaxRetries: 0})
	if _, err := b.Verify(context.Background(), &ast.Program{}); err == nil {
		t.Fatal("expected a non-200 response to error")
	}
}
