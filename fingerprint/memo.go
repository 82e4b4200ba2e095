package fingerprint

import (
	"sync"

	"github.com/veriflux/vericache/ast"
)

// memo memoizes fingerprints by node identity (not value), since distinct
// AST nodes may be structurally equal but must still only be hashed once
// each when reused across children.
type memo struct {
	mu      sync.Mutex
	entries map[ast.Node]Hash
}

func newMemo() memo {
	return memo{entries: make(map[ast.Node]Hash)}
}

func (m *memo) get(node ast.Node) (Hash, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.entries[node]
	return h, ok
}

func (m *memo) put(node ast.Node, h Hash) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[node] = h
}
