// Package benefit scores candidate roads.
//
// For a candidate {x, y} with current shortest route length d(x,y) and
// shrinkage s, the proposed road length is p = s·d(x,y) and
//
//	direct   = (d(x,y) − p) · volume(x, y)
//	indirect = Σ over n1 ∈ N(y), n2 ∈ N(x), n1 ≠ n2, when
//	           h = d(x,n1) + p + d(y,n2) < d(n1,n2):
//	               (d(n1,n2) − h) · volume(n1, n2)
//	total    = direct + indirect
//
// volume depends on the DemandMode: DemandOD reads origin–destination trip
// counts (traffic.Demand), DemandEdgeLoad reads per-road load
// (traffic.Table). Under DemandEdgeLoad the direct term is zero for every
// genuinely new road because no road {x, y} ever carried load.
//
// Unreachable distances never reach a stored score: a candidate whose
// endpoints are disconnected is reported with Buildable=false and Total=0,
// and neighbor pairs with an unreachable leg contribute nothing.
//
// Scoring is a pure function of network, loads and configuration; calling
// Score twice with the same inputs yields identical results.
package benefit
