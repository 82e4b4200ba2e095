package locate

import "github.com/veriflux/vericache/ast"

// Step is one descent from a parent node to a child: the child's Kind and
// its index among same-Kind siblings in the parent's Children() list.
type Step struct {
	Kind  ast.Kind
	Index int
}

// AccessPath addresses a node relative to some root by a sequence of Steps.
// An empty path addresses the root itself.
type AccessPath []Step

// Locate walks path from root and returns the addressed node. It reports
// false if any step is out of range — which can only happen if path was
// computed against a structurally different tree than root.
func Locate(root ast.Node, path AccessPath) (ast.Node, bool) {
	cur := root
	for _, step := range path {
		next, ok := childAt(cur, step)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func childAt(parent ast.Node, step Step) (ast.Node, bool) {
	count := 0
	for _, child := range parent.Children() {
		if child == nil || child.Kind() != step.Kind {
			continue
		}
		if count == step.Index {
			return child, true
		}
		count++
	}
	return nil, false
}

// AccessPathTo computes the path from root to target, where target must be
// reachable from root by identity (the same node instance, e.g. target was
// obtained by walking root itself). It reports false if target is not
// reachable from root.
func AccessPathTo(root, target ast.Node) (AccessPath, bool) {
	if root == target {
		return AccessPath{}, true
	}
	path, ok := find(root, target)
	if !ok {
		return nil, false
	}
	return path, true
}

func find(parent, target ast.Node) (AccessPath, bool) {
	counts := map[ast.Kind]int{}
	for _, child := range parent.Children() {
		if child == nil {
			continue
		}
		index := counts[child.Kind()]
		counts[child.Kind()]++

		if child == target {
			return AccessPath{{Kind: child.Kind(), Index: index}}, true
		}
		if sub, ok := find(child, target); ok {
			return append(AccessPath{{Kind: child.Kind(), Index: index}}, sub...), true
		}
	}
	return nil, false
}
