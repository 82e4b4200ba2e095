// Package cache stores verification results keyed by (backend, file,
// method fingerprint) so that an unchanged method is never re-verified.
//
// # Ecosystem Position
//
// cache sits between the orchestrator and a verification back end,
// intercepting per-method work the same way a result cache intercepts tool
// execution in this module's ancestry:
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                    Per-Method Verify Flow                     │
//	├───────────────────────────────────────────────────────────────┤
//	│                                                                │
//	│  orchestrator         cache                backend             │
//	│  ┌──────┐         ┌───────────┐          ┌─────────┐          │
//	│  │Verify│────────▶│  Consult  │─────────▶│ Verify  │          │
//	│  └──────┘         │           │   miss   └─────────┘          │
//	│      ▲            │ ┌───────┐ │              │                │
//	│      │            │ │ Store │◀──────────────┘                │
//	│      │    hit     │ └───────┘ │   store                      │
//	│      └────────────│           │                               │
//	│                   └───────────┘                               │
//	│                                                                │
//	└───────────────────────────────────────────────────────────────┘
//
// # Core Components
//
//   - [Store]: Get/Update/Invalidate contract
//   - [unboundedStore]: process-lifetime, guarded map (StorePolicy Unbounded)
//   - [lruStore]: capacity-bounded, backed by hashicorp/golang-lru/v2
//   - [Consult]: cache-first wrapper for callers that verify one method per
//     back-end call; the orchestrator's batched pipeline applies the same
//     hit validation itself instead of calling Consult
//
// # Cache Key
//
// A [Key] is (backendID, file, methodFingerprint): different backends never
// share entries, since two back ends can disagree about the same method.
//
// # Hit Validation
//
// A hit additionally requires the cached [Entry]'s DependencyHash to match
// the method's current one, and its access paths to still resolve against
// the current AST (see package verror's Relocate). Either check failing is
// treated as a miss — the former means a dependency changed, the latter
// means the AST diverged from what the matching dependency hash predicted.
//
// # Thread Safety
//
// Both Store implementations are safe for concurrent Get/Update/Invalidate.
package cache
