// Package depgraph builds the reference graph among a program's top-level
// members and computes each method's dependency hash, following spec.md
// §4.2. It is grounded on the visited-set reachability style used by
// reference resolvers elsewhere in the ecosystem (e.g. a compiler's
// reference resolver walking ReferenceExpr nodes against a provider
// registry): an edge is "mentions by name", and reachability terminates on
// a visited set rather than recursing into member bodies directly.
package depgraph

import (
	"sort"

	"github.com/veriflux/vericache/ast"
)

// memberKey identifies a top-level member independent of its AST identity,
// so the graph can be keyed by (kind, name) and rebuilt deterministically.
type memberKey struct {
	kind ast.Kind
	name string
}

// Graph is the directed reference graph over a program's top-level members:
// an edge from X to Y exists iff X's AST mentions Y by name.
type Graph struct {
	members map[memberKey]ast.Named
	edges   map[memberKey][]memberKey
}

// Build constructs the reference graph for program p. Method-to-method
// references are intentionally not recorded as edges: per spec.md §4.2,
// "changing another method's body must not invalidate M; only shared
// declarations do."
func Build(p *ast.Program) *Graph {
	g := &Graph{
		members: make(map[memberKey]ast.Named),
		edges:   make(map[memberKey][]memberKey),
	}

	for _, f := range p.Functions {
		g.addMember(ast.KindFunction, f.Name(), f)
	}
	for _, pr := range p.Predicates {
		g.addMember(ast.KindPredicate, pr.Name(), pr)
	}
	for _, d := range p.Domains {
		g.addMember(ast.KindDomain, d.Name(), d)
	}
	for _, fld := range p.Fields {
		g.addMember(ast.KindField, fld.Name(), fld)
	}

	for _, f := range p.Functions {
		g.addEdges(memberKey{ast.KindFunction, f.Name()}, f)
	}
	for _, pr := range p.Predicates {
		g.addEdges(memberKey{ast.KindPredicate, pr.Name()}, pr)
	}
	for _, d := range p.Domains {
		for _, ax := range d.Axioms {
			g.addEdges(memberKey{ast.KindDomain, d.Name()}, ax)
		}
	}
	for _, fld := range p.Fields {
		g.addEdges(memberKey{ast.KindField, fld.Name()}, fld)
	}

	return g
}

func (g *Graph) addMember(kind ast.Kind, name string, n ast.Named) {
	g.members[memberKey{kind, name}] = n
}

// addEdges scans node's subtree for references to other top-level members
// and records an edge from `from` to each one found.
func (g *Graph) addEdges(from memberKey, node ast.Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *ast.FuncApp:
		g.addEdgeIfMember(from, ast.KindFunction, n.FuncName)
	case *ast.PredicateAccess:
		g.addEdgeIfMember(from, ast.KindPredicate, n.PredName)
	case *ast.DomainFuncApp:
		g.addEdgeIfMember(from, ast.KindDomain, n.DomainName)
	case *ast.FieldAccess:
		g.addEdgeIfMember(from, ast.KindField, n.Field)
	case *ast.Local:
		// A domain-typed argument, return, or local is a reference to that
		// domain just as much as a DomainFuncApp is (spec.md §4.2's fifth
		// edge kind, "domain use in a type"); addEdgeIfMember discards it
		// silently if Type isn't actually a registered domain name.
		g.addEdgeIfMember(from, ast.KindDomain, n.Type)
	case *ast.Field:
		g.addEdgeIfMember(from, ast.KindDomain, n.Type)
	}
	for _, child := range node.Children() {
		g.addEdges(from, child)
	}
}

func (g *Graph) addEdgeIfMember(from memberKey, kind ast.Kind, name string) {
	to := memberKey{kind, name}
	if _, ok := g.members[to]; !ok {
		return
	}
	g.edges[from] = append(g.edges[from], to)
}

// reachable returns every member reachable from start (not including start
// itself), using a visited-set so cycles among functions/predicates
// terminate naturally (spec.md §4.2, §9).
func (g *Graph) reachable(start memberKey) []memberKey {
	visited := map[memberKey]bool{start: true}
	queue := []memberKey{start}
	var result []memberKey

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.edges[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			result = append(result, next)
			queue = append(queue, next)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].kind != result[j].kind {
			return result[i].kind < result[j].kind
		}
		return result[i].name < result[j].name
	})
	return result
}

// dependencySetFrom returns refs plus every non-method member transitively
// reachable from them, sorted by (kind, name). It is seeded with a list of
// direct references rather than a graph node (a method body
// is not itself a graph node, so callers resolve a method's references by
// scanning it directly — see Resolver.DependencyHash).
func (g *Graph) dependencySetFrom(refs []memberKey) []memberKey {
	seen := map[memberKey]bool{}
	var all []memberKey
	for _, r := range refs {
		if !seen[r] {
			seen[r] = true
			all = append(all, r)
		}
		for _, transitive := range g.reachable(r) {
			if !seen[transitive] {
				seen[transitive] = true
				all = append(all, transitive)
			}
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].kind != all[j].kind {
			return all[i].kind < all[j].kind
		}
		return all[i].name < all[j].name
	})
	return all
}
