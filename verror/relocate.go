package verror

import (
	"github.com/veriflux/vericache/ast"
	"github.com/veriflux/vericache/locate"
)

// Relocate re-resolves every error's access paths against newRoot, rewrites
// Position and ReasonPosition to match where they resolved, and marks
// survivors Cached. It reports false if any path fails to resolve — per
// spec.md §8 scenario 6, an access-path failure invalidates the whole cache
// entry for that method rather than partially redisplaying it, since a
// failure means the AST shape diverged from what dependencyHash predicted.
func Relocate(errs []LocalizedError, newRoot ast.Node) ([]LocalizedError, bool) {
	out := make([]LocalizedError, 0, len(errs))
	for _, e := range errs {
		offending, ok := locate.Locate(newRoot, e.OffendingPath)
		if !ok {
			return nil, false
		}
		reason, ok := locate.Locate(newRoot, e.ReasonPath)
		if !ok {
			return nil, false
		}
		e.Position = detachedPosition(offending)
		e.ReasonPosition = detachedPosition(reason)
		out = append(out, e.SetCached(true))
	}
	return out, true
}
