package verror

import (
	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/locate"
)

// detachedPosition returns n's current position through locate.Reposition,
// so a LocalizedError carries a plain Position value rather than holding a
// live pointer into whichever AST happened to produce it — the program a
// VerificationError's nodes belong to does not outlive the job that built
// it, but the LocalizedError derived from it does (it is cached).
func detachedPosition(n ast.Node) ast.Position {
	detached, ok := locate.Reposition(n, n.Pos())
	if !ok {
		return n.Pos()
	}
	return detached.Pos()
}
