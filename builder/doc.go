// Package builder assembles road networks and candidate-road lists for the
// planner: seed edge lists, random G(n,p) and small-world generators, a
// connectivity stitcher, and the five-junction reference scenario.
//
// Components:
//
//   - BuilderOption / builderConfig: RNG, vertex-ID scheme and weight policy.
//   - Constructors (composable via BuildGraph):
//     – Edges(records):          seed edge list.
//     – RandomSparse(n, p):      Erdős–Rényi G(n,p).
//     – WattsStrogatz(n, k, β):  ring lattice with random rewiring.
//     – Connect():               chains components so every trip is routable.
//   - Candidates(g, limit):      absent junction pairs in canonical order.
//   - Scenario5():               the reference network and its candidates.
//   - ID schemes (IDFn) and weight policies (WeightFn).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors wrapped with the constructor name and never panic.
package builder
