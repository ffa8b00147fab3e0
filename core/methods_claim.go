// File: methods_claim.go
// Role: Run ownership of a network.
// Concurrency:
//   - Lock-free; Claim is a compare-and-swap on one flag.
//   - Claims are advisory: AddVertex and AddEdge do not consult them.

package core

// Claim marks g as held by one mutating run. It reports false when another
// run already holds it. Clones start unclaimed.
func (g *Graph) Claim() bool { return g.claimed.CompareAndSwap(false, true) }

// Release ends the claim taken by a successful Claim.
func (g *Graph) Release() { g.claimed.Store(false) }

// Claimed reports whether a run currently holds g.
func (g *Graph) Claimed() bool { return g.claimed.Load() }
