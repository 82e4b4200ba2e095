package ast

// IntLit is an integer literal.
type IntLit struct {
	Value    int64
	Position Position
}

func (l *IntLit) Kind() Kind       { return KindIntLit }
func (l *IntLit) Pos() Position    { return l.Position }
func (l *IntLit) Literal() any     { return l.Value }
func (l *IntLit) Children() []Node { return nil }

// BoolLit is a boolean literal.
type BoolLit struct {
	Value    bool
	Position Position
}

func (l *BoolLit) Kind() Kind       { return KindBoolLit }
func (l *BoolLit) Pos() Position    { return l.Position }
func (l *BoolLit) Literal() any     { return l.Value }
func (l *BoolLit) Children() []Node { return nil }

// NullLit is the null reference literal.
type NullLit struct {
	Position Position
}

func (l *NullLit) Kind() Kind       { return KindNullLit }
func (l *NullLit) Pos() Position    { return l.Position }
func (l *NullLit) Literal() any     { return nil }
func (l *NullLit) Children() []Node { return nil }

// LocalVar references a local (argument, return, or body-local) by name.
type LocalVar struct {
	VarName  string
	Position Position
}

func (v *LocalVar) Kind() Kind       { return KindLocalVar }
func (v *LocalVar) Pos() Position    { return v.Position }
func (v *LocalVar) Literal() any     { return v.VarName }
func (v *LocalVar) Children() []Node { return nil }

// Result references a function's return value inside its own
// postcondition.
type Result struct {
	Position Position
}

func (r *Result) Kind() Kind       { return KindResult }
func (r *Result) Pos() Position    { return r.Position }
func (r *Result) Literal() any     { return nil }
func (r *Result) Children() []Node { return nil }

// BinExpr covers arithmetic, comparison, and logical binary operators.
type BinExpr struct {
	Op       string
	Left     Node
	Right    Node
	Position Position
}

func (b *BinExpr) Kind() Kind       { return KindBinExpr }
func (b *BinExpr) Pos() Position    { return b.Position }
func (b *BinExpr) Literal() any     { return b.Op }
func (b *BinExpr) Children() []Node { return []Node{b.Left, b.Right} }

// UnExpr covers unary negation, logical not, and permission negation.
type UnExpr struct {
	Op       string
	Operand  Node
	Position Position
}

func (u *UnExpr) Kind() Kind       { return KindUnExpr }
func (u *UnExpr) Pos() Position    { return u.Position }
func (u *UnExpr) Literal() any     { return u.Op }
func (u *UnExpr) Children() []Node { return []Node{u.Operand} }

// CondExpr is a ternary conditional expression.
type CondExpr struct {
	Cond, Then, Else Node
	Position         Position
}

func (c *CondExpr) Kind() Kind       { return KindCondExpr }
func (c *CondExpr) Pos() Position    { return c.Position }
func (c *CondExpr) Literal() any     { return nil }
func (c *CondExpr) Children() []Node { return []Node{c.Cond, c.Then, c.Else} }

// FieldAccess reads a heap field off a receiver expression.
type FieldAccess struct {
	Receiver Node
	Field    string
	Position Position
}

func (f *FieldAccess) Kind() Kind       { return KindFieldAccess }
func (f *FieldAccess) Pos() Position    { return f.Position }
func (f *FieldAccess) Literal() any     { return f.Field }
func (f *FieldAccess) Children() []Node { return []Node{f.Receiver} }

// FuncApp applies a top-level pure function.
type FuncApp struct {
	FuncName string
	Args     []Node
	Position Position
}

func (f *FuncApp) Kind() Kind       { return KindFuncApp }
func (f *FuncApp) Pos() Position    { return f.Position }
func (f *FuncApp) Literal() any     { return f.FuncName }
func (f *FuncApp) Children() []Node { return f.Args }

// DomainFuncApp applies a domain function.
type DomainFuncApp struct {
	DomainName string
	FuncName   string
	Args       []Node
	Position   Position
}

func (d *DomainFuncApp) Kind() Kind       { return KindDomainFuncApp }
func (d *DomainFuncApp) Pos() Position    { return d.Position }
func (d *DomainFuncApp) Literal() any     { return d.DomainName + "::" + d.FuncName }
func (d *DomainFuncApp) Children() []Node { return d.Args }

// Old evaluates an expression in the method's pre-state.
type Old struct {
	Expr     Node
	Position Position
}

func (o *Old) Kind() Kind       { return KindOld }
func (o *Old) Pos() Position    { return o.Position }
func (o *Old) Literal() any     { return nil }
func (o *Old) Children() []Node { return []Node{o.Expr} }

// LabelledOld evaluates an expression in the state captured at a named
// Label.
type LabelledOld struct {
	Label    string
	Expr     Node
	Position Position
}

func (l *LabelledOld) Kind() Kind       { return KindLabelledOld }
func (l *LabelledOld) Pos() Position    { return l.Position }
func (l *LabelledOld) Literal() any     { return l.Label }
func (l *LabelledOld) Children() []Node { return []Node{l.Expr} }

// Unfolding evaluates Body with the predicate instance Acc temporarily
// unfolded.
type Unfolding struct {
	Acc      *PredicateAccess
	Body     Node
	Position Position
}

func (u *Unfolding) Kind() Kind       { return KindUnfolding }
func (u *Unfolding) Pos() Position    { return u.Position }
func (u *Unfolding) Literal() any     { return nil }
func (u *Unfolding) Children() []Node { return []Node{u.Acc, u.Body} }

// Applying evaluates Body after applying a magic wand.
type Applying struct {
	Wand     Node
	Body     Node
	Position Position
}

func (a *Applying) Kind() Kind       { return KindApplying }
func (a *Applying) Pos() Position    { return a.Position }
func (a *Applying) Literal() any     { return nil }
func (a *Applying) Children() []Node { return []Node{a.Wand, a.Body} }

// Forall is a universally-quantified expression with optional trigger sets.
type Forall struct {
	Vars     []*Local
	Triggers [][]Node
	Body     Node
	Position Position
}

func (f *Forall) Kind() Kind    { return KindForall }
func (f *Forall) Pos() Position { return f.Position }
func (f *Forall) Literal() any  { return nil }

func (f *Forall) Children() []Node {
	children := make([]Node, 0, len(f.Vars)+1)
	for _, v := range f.Vars {
		children = append(children, v)
	}
	for _, trigger := range f.Triggers {
		children = append(children, trigger...)
	}
	children = append(children, f.Body)
	return children
}

// Exists is an existentially-quantified expression.
type Exists struct {
	Vars     []*Local
	Body     Node
	Position Position
}

func (e *Exists) Kind() Kind    { return KindExists }
func (e *Exists) Pos() Position { return e.Position }
func (e *Exists) Literal() any  { return nil }

func (e *Exists) Children() []Node {
	children := make([]Node, 0, len(e.Vars)+1)
	for _, v := range e.Vars {
		children = append(children, v)
	}
	children = append(children, e.Body)
	return children
}

// PermExpr covers permission-arithmetic expressions: literal fractions
// (write, none, wildcard) and their combination (Op == "+"/"-"/"*").
type PermExpr struct {
	Op       string // "" for a literal amount, otherwise the combining operator
	Numer    int64  // used when Op == "" and this is a literal fraction
	Denom    int64
	Left     Node // nil for a literal amount
	Right    Node
	Position Position
}

func (p *PermExpr) Kind() Kind { return KindPermExpr }
func (p *PermExpr) Pos() Position { return p.Position }

func (p *PermExpr) Literal() any {
	if p.Op == "" {
		return [2]int64{p.Numer, p.Denom}
	}
	return p.Op
}

func (p *PermExpr) Children() []Node {
	if p.Left == nil {
		return nil
	}
	return []Node{p.Left, p.Right}
}

// collectionExpr covers Seq/Set/Multiset expressions, all shaped as an
// operator tag over an ordered element list (e.g. "literal", "union",
// "contains", "length").
type collectionExpr struct {
	kind     Kind
	Op       string
	Elems    []Node
	Position Position
}

func (c *collectionExpr) Kind() Kind       { return c.kind }
func (c *collectionExpr) Pos() Position    { return c.Position }
func (c *collectionExpr) Literal() any     { return c.Op }
func (c *collectionExpr) Children() []Node { return c.Elems }

// SeqExpr is a sequence-typed operation (literal, concatenation, indexing,
// length, ...).
type SeqExpr struct{ collectionExpr }

// NewSeqExpr constructs a SeqExpr.
func NewSeqExpr(op string, elems []Node, pos Position) *SeqExpr {
	return &SeqExpr{collectionExpr{KindSeqExpr, op, elems, pos}}
}

// SetExpr is a set-typed operation.
type SetExpr struct{ collectionExpr }

// NewSetExpr constructs a SetExpr.
func NewSetExpr(op string, elems []Node, pos Position) *SetExpr {
	return &SetExpr{collectionExpr{KindSetExpr, op, elems, pos}}
}

// MultisetExpr is a multiset-typed operation.
type MultisetExpr struct{ collectionExpr }

// NewMultisetExpr constructs a MultisetExpr.
func NewMultisetExpr(op string, elems []Node, pos Position) *MultisetExpr {
	return &MultisetExpr{collectionExpr{KindMultisetExpr, op, elems, pos}}
}
