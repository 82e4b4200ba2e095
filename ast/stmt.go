package ast

// Seqn is a statement block/scope. It carries its own local declarations
// (spec.md §3: "scopes... carry local declarations").
type Seqn struct {
	Locals   []*Local
	Stmts    []Node
	Position Position
}

func (s *Seqn) Kind() Kind    { return KindSeqn }
func (s *Seqn) Pos() Position { return s.Position }
func (s *Seqn) Literal() any  { return nil }

func (s *Seqn) Children() []Node {
	children := make([]Node, 0, len(s.Locals)+len(s.Stmts))
	for _, l := range s.Locals {
		children = append(children, l)
	}
	children = append(children, s.Stmts...)
	return children
}

// If is a conditional statement.
type If struct {
	Cond     Node
	Then     *Seqn
	Else     *Seqn // nil if no else branch
	Position Position
}

func (i *If) Kind() Kind    { return KindIf }
func (i *If) Pos() Position { return i.Position }
func (i *If) Literal() any  { return nil }

func (i *If) Children() []Node {
	children := []Node{i.Cond, i.Then}
	if i.Else != nil {
		children = append(children, i.Else)
	}
	return children
}

// While is a loop statement with loop invariants.
type While struct {
	Cond       Node
	Invariants []Node
	Body       *Seqn
	Position   Position
}

func (w *While) Kind() Kind    { return KindWhile }
func (w *While) Pos() Position { return w.Position }
func (w *While) Literal() any  { return nil }

func (w *While) Children() []Node {
	children := make([]Node, 0, len(w.Invariants)+2)
	children = append(children, w.Cond)
	children = append(children, w.Invariants...)
	children = append(children, w.Body)
	return children
}

// LocalVarDecl declares a local without assigning it, as a statement.
type LocalVarDecl struct {
	Local    *Local
	Position Position
}

func (d *LocalVarDecl) Kind() Kind       { return KindLocalVarDecl }
func (d *LocalVarDecl) Pos() Position    { return d.Position }
func (d *LocalVarDecl) Literal() any     { return nil }
func (d *LocalVarDecl) Children() []Node { return []Node{d.Local} }

// Assign is a field or local assignment.
type Assign struct {
	Lhs      Node
	Rhs      Node
	Position Position
}

func (a *Assign) Kind() Kind       { return KindAssign }
func (a *Assign) Pos() Position    { return a.Position }
func (a *Assign) Literal() any     { return nil }
func (a *Assign) Children() []Node { return []Node{a.Lhs, a.Rhs} }

// MethodCall invokes a method, assigning its formal returns to Targets.
type MethodCall struct {
	Callee   string
	Args     []Node
	Targets  []Node
	Position Position
}

func (c *MethodCall) Kind() Kind    { return KindMethodCall }
func (c *MethodCall) Pos() Position { return c.Position }
func (c *MethodCall) Literal() any  { return c.Callee }

func (c *MethodCall) Children() []Node {
	children := make([]Node, 0, len(c.Args)+len(c.Targets))
	children = append(children, c.Args...)
	children = append(children, c.Targets...)
	return children
}

// Inhale, Exhale, Assert, and Assume each wrap a single boolean/permission
// expression. They are distinct types (rather than one struct tagged by
// Kind) so that package locate's position-update dispatch table can type-
// assert to each one directly.
type Inhale struct {
	Expr     Node
	Position Position
}

func (i *Inhale) Kind() Kind       { return KindInhale }
func (i *Inhale) Pos() Position    { return i.Position }
func (i *Inhale) Literal() any     { return nil }
func (i *Inhale) Children() []Node { return []Node{i.Expr} }

type Exhale struct {
	Expr     Node
	Position Position
}

func (e *Exhale) Kind() Kind       { return KindExhale }
func (e *Exhale) Pos() Position    { return e.Position }
func (e *Exhale) Literal() any     { return nil }
func (e *Exhale) Children() []Node { return []Node{e.Expr} }

type Assert struct {
	Expr     Node
	Position Position
}

func (a *Assert) Kind() Kind       { return KindAssert }
func (a *Assert) Pos() Position    { return a.Position }
func (a *Assert) Literal() any     { return nil }
func (a *Assert) Children() []Node { return []Node{a.Expr} }

type Assume struct {
	Expr     Node
	Position Position
}

func (a *Assume) Kind() Kind       { return KindAssume }
func (a *Assume) Pos() Position    { return a.Position }
func (a *Assume) Literal() any     { return nil }
func (a *Assume) Children() []Node { return []Node{a.Expr} }

// PredicateAccess references a predicate instance by name and arguments —
// used both as an expression (permission amount) and as the target of
// Fold/Unfold statements.
type PredicateAccess struct {
	PredName string
	Args     []Node
	Position Position
}

func (p *PredicateAccess) Kind() Kind    { return KindPredicateAccess }
func (p *PredicateAccess) Pos() Position { return p.Position }
func (p *PredicateAccess) Literal() any  { return p.PredName }
func (p *PredicateAccess) Children() []Node { return p.Args }

// Fold and Unfold both target a PredicateAccess.
type Fold struct {
	Acc      *PredicateAccess
	Position Position
}

func (f *Fold) Kind() Kind       { return KindFold }
func (f *Fold) Pos() Position    { return f.Position }
func (f *Fold) Literal() any     { return nil }
func (f *Fold) Children() []Node { return []Node{f.Acc} }

type Unfold struct {
	Acc      *PredicateAccess
	Position Position
}

func (u *Unfold) Kind() Kind       { return KindUnfold }
func (u *Unfold) Pos() Position    { return u.Position }
func (u *Unfold) Literal() any     { return nil }
func (u *Unfold) Children() []Node { return []Node{u.Acc} }

// Package statement consumes a magic wand, proving its right side given its
// left side holds.
type Package struct {
	Wand     Node
	Proof    *Seqn // nil if no explicit proof script
	Position Position
}

func (p *Package) Kind() Kind    { return KindPackage }
func (p *Package) Pos() Position { return p.Position }
func (p *Package) Literal() any  { return nil }

func (p *Package) Children() []Node {
	if p.Proof == nil {
		return []Node{p.Wand}
	}
	return []Node{p.Wand, p.Proof}
}

// Apply statement consumes a magic wand's left side to produce its right.
type Apply struct {
	Wand     Node
	Position Position
}

func (a *Apply) Kind() Kind       { return KindApply }
func (a *Apply) Pos() Position    { return a.Position }
func (a *Apply) Literal() any     { return nil }
func (a *Apply) Children() []Node { return []Node{a.Wand} }

// Label marks a program point that LabelledOld expressions may refer back
// to.
type Label struct {
	LabelName string
	Position  Position
}

func (l *Label) Kind() Kind       { return KindLabel }
func (l *Label) Pos() Position    { return l.Position }
func (l *Label) Literal() any     { return l.LabelName }
func (l *Label) Children() []Node { return nil }

// Goto transfers control to a named label.
type Goto struct {
	Target   string
	Position Position
}

func (g *Goto) Kind() Kind       { return KindGoto }
func (g *Goto) Pos() Position    { return g.Position }
func (g *Goto) Literal() any     { return g.Target }
func (g *Goto) Children() []Node { return nil }
