package depgraph

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/fingerprint"
)

// Resolver computes dependency hashes for every method in a program,
// relative to a shared Fingerprinter (spec.md §4.2).
type Resolver struct {
	fp    *fingerprint.Fingerprinter
	graph *Graph
}

// NewResolver builds the reference graph for p and returns a Resolver that
// can compute DependencyHash for any of p's methods.
func NewResolver(p *ast.Program, fp *fingerprint.Fingerprinter) *Resolver {
	return &Resolver{fp: fp, graph: Build(p)}
}

// DependencyHash returns a hash combining m's own fingerprint with the
// fingerprints of every member in m's transitive dependency set, in
// canonical (kind, name) order (spec.md §3, §4.2).
//
// Changing another method's body never affects this hash: direct
// references are scanned from m's own AST, and the graph that transitive
// references are resolved against contains no method-to-method edges.
func (r *Resolver) DependencyHash(m *ast.Method) fingerprint.Hash {
	var direct []memberKey
	seen := map[memberKey]bool{}
	scan := func(node ast.Node) {
		visitReferences(node, func(kind ast.Kind, name string) {
			key := memberKey{kind, name}
			if _, ok := r.graph.members[key]; !ok {
				return
			}
			if seen[key] {
				return
			}
			seen[key] = true
			direct = append(direct, key)
		})
	}
	for _, arg := range m.Args {
		scan(arg)
	}
	for _, ret := range m.Rets {
		scan(ret)
	}
	for _, pre := range m.Pres {
		scan(pre)
	}
	for _, post := range m.Posts {
		scan(post)
	}
	if m.Body != nil {
		scan(m.Body)
	}

	deps := r.graph.dependencySetFrom(direct)

	digest := xxhash.New()
	writeHash(digest, r.fp.Fingerprint(m))
	for _, dep := range deps {
		writeHash(digest, r.fp.Fingerprint(r.graph.members[dep]))
	}

	var h fingerprint.Hash
	binary.LittleEndian.PutUint64(h[:8], digest.Sum64())
	// Second half carries the dependency-set size so that a method with an
	// empty dependency set and one with a (coincidentally) same-hashing
	// nonempty set cannot collide on the first 8 bytes alone.
	binary.LittleEndian.PutUint64(h[8:], uint64(len(deps))+1)
	return h
}

func writeHash(d *xxhash.Digest, h fingerprint.Hash) {
	_, _ = d.Write(h[:])
}

// visitReferences walks node's subtree and invokes fn for every
// function/predicate/domain/field reference found, including a domain name
// used as an argument, return, or local's Type, mirroring Graph.addEdges's
// notion of "mentions by name".
func visitReferences(node ast.Node, fn func(kind ast.Kind, name string)) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.FuncApp:
		fn(ast.KindFunction, n.FuncName)
	case *ast.PredicateAccess:
		fn(ast.KindPredicate, n.PredName)
	case *ast.DomainFuncApp:
		fn(ast.KindDomain, n.DomainName)
	case *ast.FieldAccess:
		fn(ast.KindField, n.Field)
	case *ast.Local:
		fn(ast.KindDomain, n.Type)
	}
	for _, child := range node.Children() {
		visitReferences(child, fn)
	}
}
