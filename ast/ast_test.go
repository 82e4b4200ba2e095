package ast

import "testing"

func TestMethodChildren(t *testing.T) {
	m := &Method{
		MethodName: "foo",
		Args:       []*Local{{LocalName: "x", Type: "Int", Role: RoleArgument}},
		Rets:       []*Local{{LocalName: "r", Type: "Int", Role: RoleReturn}},
		Pres:       []Node{&BoolLit{Value: true}},
		Posts:      []Node{&BoolLit{Value: true}},
		Body:       &Seqn{Stmts: []Node{&Assert{Expr: &BoolLit{Value: true}}}},
	}

	children := m.Children()
	if len(children) != 5 {
		t.Fatalf("Children() = %d nodes, want 5 (arg, ret, pre, post, body)", len(children))
	}
	if children[0].Kind() != KindLocal || children[4].Kind() != KindSeqn {
		t.Fatalf("unexpected child ordering: %v, %v", children[0].Kind(), children[4].Kind())
	}
}

func TestProgramDefinitionsCoversAllKinds(t *testing.T) {
	p := &Program{
		Methods:    []*Method{{MethodName: "m"}},
		Functions:  []*Function{{FunctionName: "f"}},
		Predicates: []*Predicate{{PredicateName: "p"}},
		Domains: []*Domain{{
			DomainName: "D",
			Functions:  []*DomainFunc{{FuncName: "df"}},
			Axioms:     []*Axiom{{AxiomName: "ax"}},
		}},
		Fields: []*Field{{FieldName: "fld", Type: "Int"}},
	}

	defs := p.Definitions()
	seen := map[Kind]bool{}
	for _, d := range defs {
		seen[d.Kind] = true
	}
	for _, want := range []Kind{KindMethod, KindFunction, KindPredicate, KindDomain, KindDomainFunc, KindAxiom, KindField} {
		if !seen[want] {
			t.Errorf("Definitions() missing a %s record", want)
		}
	}
}

func TestProgramOutlineSortedByKindThenName(t *testing.T) {
	p := &Program{
		Methods: []*Method{{MethodName: "zzz"}, {MethodName: "aaa"}},
	}
	outline := p.Outline()
	if len(outline) != 2 {
		t.Fatalf("Outline() = %d, want 2", len(outline))
	}
	if outline[0].(Named).Name() != "aaa" {
		t.Errorf("Outline()[0] = %q, want \"aaa\"", outline[0].(Named).Name())
	}
}

func TestWithMethodsPreservesOtherMembers(t *testing.T) {
	p := &Program{
		Methods:   []*Method{{MethodName: "m1"}},
		Functions: []*Function{{FunctionName: "f"}},
	}
	reduced := p.WithMethods([]*Method{{MethodName: "m2"}})

	if len(reduced.Methods) != 1 || reduced.Methods[0].MethodName != "m2" {
		t.Fatalf("WithMethods did not replace Methods: %+v", reduced.Methods)
	}
	if len(reduced.Functions) != 1 || reduced.Functions[0] != p.Functions[0] {
		t.Fatalf("WithMethods did not preserve Functions")
	}
}

func TestPositionHasLineInfo(t *testing.T) {
	if (Position{}).HasLineInfo() {
		t.Error("zero Position should report no line info")
	}
	if !(Position{Line: 1}).HasLineInfo() {
		t.Error("Position with Line=1 should report line info")
	}
}
