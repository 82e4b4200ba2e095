// Package locate resolves a cached error's offending node across an edited
// AST without re-running any analysis.
//
// An AccessPath is a position-independent address: a sequence of (Kind,
// index-among-same-kind-siblings) steps descending from a method's root.
// Because two structurally equal ASTs parsed from the same method body
// produce identical access paths even when line numbers shift, a path
// recorded against the AST sent to a back end can be replayed against the
// freshly parsed AST on the next keystroke to find the corresponding node —
// and, from it, the corresponding (possibly shifted) source position.
//
//	root
//	 └─ Seqn
//	     └─ Assert     (Kind=Assert, index=0 among Assert siblings of Seqn)
//	         └─ BinExpr (Kind=BinExpr, index=0)
//
// Repositioning a located node (producing a copy with an updated Position,
// rather than mutating the shared AST) goes through an explicit dispatch
// table keyed by ast.Kind, see reposition.go. The table is exhaustive over
// the closed AST variant set; an unrecognized kind is a programming error in
// a caller, not a malformed program, and is handled by returning the node
// unchanged rather than panicking.
package locate
