package locate

import "github.com/veriflux/vericache/ast"

// Reposition returns a copy of node with its Position replaced by pos,
// leaving node itself untouched. It is used after Locate resolves a cached
// error's access path against a freshly parsed AST: the located node's own
// Position already reflects the edit, and Reposition hands callers a
// detached value carrying just that position, so report/verror code does
// not need to keep the whole located subtree alive.
//
// The table is exhaustive over the closed AST variant set (ast.Kind); a kind
// with no entry is either a declaration kind that position-update never
// targets (arguments and returns are relocated as part of their enclosing
// member, not independently) or truly unrecognized; either way the original
// node is returned unchanged with false, and nothing is logged.
func Reposition(node ast.Node, pos ast.Position) (ast.Node, bool) {
	fn, ok := repositioners[node.Kind()]
	if !ok {
		return node, false
	}
	return fn(node, pos), true
}

type repositionFunc func(ast.Node, ast.Position) ast.Node

var repositioners = map[ast.Kind]repositionFunc{
	ast.KindMethod: func(n ast.Node, pos ast.Position) ast.Node {
		m := *n.(*ast.Method)
		m.Position = pos
		return &m
	},
	ast.KindFunction: func(n ast.Node, pos ast.Position) ast.Node {
		f := *n.(*ast.Function)
		f.Position = pos
		return &f
	},
	ast.KindPredicate: func(n ast.Node, pos ast.Position) ast.Node {
		p := *n.(*ast.Predicate)
		p.Position = pos
		return &p
	},
	ast.KindDomainFunc: func(n ast.Node, pos ast.Position) ast.Node {
		d := *n.(*ast.DomainFunc)
		d.Position = pos
		return &d
	},
	ast.KindAxiom: func(n ast.Node, pos ast.Position) ast.Node {
		a := *n.(*ast.Axiom)
		a.Position = pos
		return &a
	},
	ast.KindDomain: func(n ast.Node, pos ast.Position) ast.Node {
		d := *n.(*ast.Domain)
		d.Position = pos
		return &d
	},
	ast.KindField: func(n ast.Node, pos ast.Position) ast.Node {
		f := *n.(*ast.Field)
		f.Position = pos
		return &f
	},
	ast.KindLocal: func(n ast.Node, pos ast.Position) ast.Node {
		l := *n.(*ast.Local)
		l.Position = pos
		return &l
	},
	ast.KindSeqn: func(n ast.Node, pos ast.Position) ast.Node {
		s := *n.(*ast.Seqn)
		s.Position = pos
		return &s
	},
	ast.KindIf: func(n ast.Node, pos ast.Position) ast.Node {
		i := *n.(*ast.If)
		i.Position = pos
		return &i
	},
	ast.KindWhile: func(n ast.Node, pos ast.Position) ast.Node {
		w := *n.(*ast.While)
		w.Position = pos
		return &w
	},
	ast.KindLocalVarDecl: func(n ast.Node, pos ast.Position) ast.Node {
		d := *n.(*ast.LocalVarDecl)
		d.Position = pos
		return &d
	},
	ast.KindAssign: func(n ast.Node, pos ast.Position) ast.Node {
		a := *n.(*ast.Assign)
		a.Position = pos
		return &a
	},
	ast.KindMethodCall: func(n ast.Node, pos ast.Position) ast.Node {
		c := *n.(*ast.MethodCall)
		c.Position = pos
		return &c
	},
	ast.KindInhale: func(n ast.Node, pos ast.Position) ast.Node {
		i := *n.(*ast.Inhale)
		i.Position = pos
		return &i
	},
	ast.KindExhale: func(n ast.Node, pos ast.Position) ast.Node {
		e := *n.(*ast.Exhale)
		e.Position = pos
		return &e
	},
	ast.KindAssert: func(n ast.Node, pos ast.Position) ast.Node {
		a := *n.(*ast.Assert)
		a.Position = pos
		return &a
	},
	ast.KindAssume: func(n ast.Node, pos ast.Position) ast.Node {
		a := *n.(*ast.Assume)
		a.Position = pos
		return &a
	},
	ast.KindFold: func(n ast.Node, pos ast.Position) ast.Node {
		f := *n.(*ast.Fold)
		f.Position = pos
		return &f
	},
	ast.KindUnfold: func(n ast.Node, pos ast.Position) ast.Node {
		u := *n.(*ast.Unfold)
		u.Position = pos
		return &u
	},
	ast.KindLabel: func(n ast.Node, pos ast.Position) ast.Node {
		l := *n.(*ast.Label)
		l.Position = pos
		return &l
	},
	ast.KindGoto: func(n ast.Node, pos ast.Position) ast.Node {
		g := *n.(*ast.Goto)
		g.Position = pos
		return &g
	},
	ast.KindPackage: func(n ast.Node, pos ast.Position) ast.Node {
		p := *n.(*ast.Package)
		p.Position = pos
		return &p
	},
	ast.KindApply: func(n ast.Node, pos ast.Position) ast.Node {
		a := *n.(*ast.Apply)
		a.Position = pos
		return &a
	},
	ast.KindIntLit: func(n ast.Node, pos ast.Position) ast.Node {
		l := *n.(*ast.IntLit)
		l.Position = pos
		return &l
	},
	ast.KindBoolLit: func(n ast.Node, pos ast.Position) ast.Node {
		l := *n.(*ast.BoolLit)
		l.Position = pos
		return &l
	},
	ast.KindNullLit: func(n ast.Node, pos ast.Position) ast.Node {
		l := *n.(*ast.NullLit)
		l.Position = pos
		return &l
	},
	ast.KindLocalVar: func(n ast.Node, pos ast.Position) ast.Node {
		v := *n.(*ast.LocalVar)
		v.Position = pos
		return &v
	},
	ast.KindResult: func(n ast.Node, pos ast.Position) ast.Node {
		r := *n.(*ast.Result)
		r.Position = pos
		return &r
	},
	ast.KindBinExpr: func(n ast.Node, pos ast.Position) ast.Node {
		b := *n.(*ast.BinExpr)
		b.Position = pos
		return &b
	},
	ast.KindUnExpr: func(n ast.Node, pos ast.Position) ast.Node {
		u := *n.(*ast.UnExpr)
		u.Position = pos
		return &u
	},
	ast.KindCondExpr: func(n ast.Node, pos ast.Position) ast.Node {
		c := *n.(*ast.CondExpr)
		c.Position = pos
		return &c
	},
	ast.KindFieldAccess: func(n ast.Node, pos ast.Position) ast.Node {
		f := *n.(*ast.FieldAccess)
		f.Position = pos
		return &f
	},
	ast.KindPredicateAccess: func(n ast.Node, pos ast.Position) ast.Node {
		p := *n.(*ast.PredicateAccess)
		p.Position = pos
		return &p
	},
	ast.KindFuncApp: func(n ast.Node, pos ast.Position) ast.Node {
		f := *n.(*ast.FuncApp)
		f.Position = pos
		return &f
	},
	ast.KindDomainFuncApp: func(n ast.Node, pos ast.Position) ast.Node {
		d := *n.(*ast.DomainFuncApp)
		d.Position = pos
		return &d
	},
	ast.KindOld: func(n ast.Node, pos ast.Position) ast.Node {
		o := *n.(*ast.Old)
		o.Position = pos
		return &o
	},
	ast.KindLabelledOld: func(n ast.Node, pos ast.Position) ast.Node {
		l := *n.(*ast.LabelledOld)
		l.Position = pos
		return &l
	},
	ast.KindUnfolding: func(n ast.Node, pos ast.Position) ast.Node {
		u := *n.(*ast.Unfolding)
		u.Position = pos
		return &u
	},
	ast.KindApplying: func(n ast.Node, pos ast.Position) ast.Node {
		a := *n.(*ast.Applying)
		a.Position = pos
		return &a
	},
	ast.KindForall: func(n ast.Node, pos ast.Position) ast.Node {
		f := *n.(*ast.Forall)
		f.Position = pos
		return &f
	},
	ast.KindExists: func(n ast.Node, pos ast.Position) ast.Node {
		e := *n.(*ast.Exists)
		e.Position = pos
		return &e
	},
	ast.KindPermExpr: func(n ast.Node, pos ast.Position) ast.Node {
		p := *n.(*ast.PermExpr)
		p.Position = pos
		return &p
	},
	ast.KindSeqExpr: func(n ast.Node, pos ast.Position) ast.Node {
		s := *n.(*ast.SeqExpr)
		s.Position = pos
		return &s
	},
	ast.KindSetExpr: func(n ast.Node, pos ast.Position) ast.Node {
		s := *n.(*ast.SetExpr)
		s.Position = pos
		return &s
	},
	ast.KindMultisetExpr: func(n ast.Node, pos ast.Position) ast.Node {
		s := *n.(*ast.MultisetExpr)
		s.Position = pos
		return &s
	},
}
