package ast

// Kind tags every node variant in the closed AST variant set described by
// the cache's contract. Fingerprinting and access-path resolution both key
// off Kind rather than Go's dynamic type so that a single dispatch table
// (see package locate) can stay exhaustive and reviewable in one place.
type Kind int

const (
	KindInvalid Kind = iota

	// Members.
	KindMethod
	KindFunction
	KindPredicate
	KindDomain
	KindDomainFunc
	KindAxiom
	KindField

	// Declarations.
	KindArgument
	KindReturn
	KindLocal

	// Statements.
	KindSeqn
	KindIf
	KindWhile
	KindLocalVarDecl
	KindAssign
	KindMethodCall
	KindInhale
	KindExhale
	KindAssert
	KindAssume
	KindFold
	KindUnfold
	KindLabel
	KindGoto
	KindPackage
	KindApply

	// Expressions.
	KindIntLit
	KindBoolLit
	KindNullLit
	KindLocalVar
	KindResult
	KindBinExpr
	KindUnExpr
	KindCondExpr
	KindFieldAccess
	KindPredicateAccess
	KindFuncApp
	KindDomainFuncApp
	KindOld
	KindLabelledOld
	KindUnfolding
	KindApplying
	KindForall
	KindExists
	KindPermExpr
	KindSeqExpr
	KindSetExpr
	KindMultisetExpr
)

//go:generate stringer -type=Kind

var kindNames = map[Kind]string{
	KindInvalid:         "Invalid",
	KindMethod:          "Method",
	KindFunction:        "Function",
	KindPredicate:       "Predicate",
	KindDomain:          "Domain",
	KindDomainFunc:      "DomainFunc",
	KindAxiom:           "Axiom",
	KindField:           "Field",
	KindArgument:        "Argument",
	KindReturn:          "Return",
	KindLocal:           "Local",
	KindSeqn:            "Seqn",
	KindIf:              "If",
	KindWhile:           "While",
	KindLocalVarDecl:    "LocalVarDecl",
	KindAssign:          "Assign",
	KindMethodCall:      "MethodCall",
	KindInhale:          "Inhale",
	KindExhale:          "Exhale",
	KindAssert:          "Assert",
	KindAssume:          "Assume",
	KindFold:            "Fold",
	KindUnfold:          "Unfold",
	KindLabel:           "Label",
	KindGoto:            "Goto",
	KindPackage:         "Package",
	KindApply:           "Apply",
	KindIntLit:          "IntLit",
	KindBoolLit:         "BoolLit",
	KindNullLit:         "NullLit",
	KindLocalVar:        "LocalVar",
	KindResult:          "Result",
	KindBinExpr:         "BinExpr",
	KindUnExpr:          "UnExpr",
	KindCondExpr:        "CondExpr",
	KindFieldAccess:     "FieldAccess",
	KindPredicateAccess: "PredicateAccess",
	KindFuncApp:         "FuncApp",
	KindDomainFuncApp:   "DomainFuncApp",
	KindOld:             "Old",
	KindLabelledOld:     "LabelledOld",
	KindUnfolding:       "Unfolding",
	KindApplying:        "Applying",
	KindForall:          "Forall",
	KindExists:          "Exists",
	KindPermExpr:        "PermExpr",
	KindSeqExpr:         "SeqExpr",
	KindSetExpr:         "SetExpr",
	KindMultisetExpr:    "MultisetExpr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MemberKind reports whether k is one of the top-level member variants
// {Method, Function, Predicate, Domain, Field}.
func (k Kind) MemberKind() bool {
	switch k {
	case KindMethod, KindFunction, KindPredicate, KindDomain, KindField:
		return true
	default:
		return false
	}
}

// Node is any node in the AST. Implementations must be immutable value or
// pointer types whose Children/Literal never depend on Pos, so that
// Fingerprint(node) stays position-independent (invariant I2).
type Node interface {
	// Kind identifies the node's variant.
	Kind() Kind

	// Pos returns the node's source position.
	Pos() Position

	// Children returns the node's child nodes in declaration order.
	// Nil/absent optional children (e.g. a Method with no body) are simply
	// omitted, not represented as a typed nil entry.
	Children() []Node

	// Literal returns the node's own scalar payload (an identifier name,
	// integer constant, boolean tag, operator symbol) or nil if the node
	// carries no such value. Literal values are included in a node's
	// fingerprint; Position never is.
	Literal() any
}

// Named is implemented by nodes that carry a referenceable name: the five
// member kinds, domain functions, and locals.
type Named interface {
	Node
	Name() string
}
