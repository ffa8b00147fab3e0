// Package dijkstra is the shortest-path oracle of roadnet: Dijkstra's
// algorithm over a core.Graph road network with non-negative float64 weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex
//     to every vertex in O((V + E) log V), relaxing edges in increasing order
//     of distance through a min-heap with lazy decrease-key.
//   - Vertices that cannot be reached keep the distance Unreachable (+Inf).
//     Unreachability is a value, never an error: traffic assignment and
//     benefit scoring treat it as a zero contribution.
//   - Oracle wraps Dijkstra with a memo of single-source trees so that the many
//     pairwise queries issued while scoring candidate roads share work.
//
// Key features:
//
//   - Functional options: Source, WithReturnPath, WithMaxDistance,
//     WithInfEdgeThreshold.
//   - Deterministic tie-breaking: equal distances are settled in vertex-ID
//     order, and neighbors are relaxed in sorted order, so predecessor maps
//     and reconstructed paths are reproducible.
//   - Oracle memo backed by github.com/hashicorp/golang-lru/v2, keyed by
//     source vertex, purged whenever core.Graph.Version changes.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source option was not provided or is "".
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrVertexNotFound:  the source vertex is not in the graph.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance with a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold with a value ≤ 0.
//   - ErrBadCacheSize:    NewOracle with a cache size < 1.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func NewOracle(g *core.Graph, opts ...OracleOption) (*Oracle, error)
//	func (o *Oracle) PathLength(u, v string) float64
//	func (o *Oracle) Path(u, v string) ([]string, bool)
//
// Thread safety:
//
//   - Dijkstra reads the graph through its locked accessors; concurrent
//     mutation during a run yields a result for some interleaving of states.
//   - Oracle methods are safe for concurrent use.
package dijkstra
