package selector

import (
	"errors"

	"github.com/katalvlaran/roadnet/benefit"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/traffic"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil network.
	ErrNilGraph = errors.New("selector: graph is nil")

	// ErrAlreadyRun indicates a second Run on the same Selector.
	ErrAlreadyRun = errors.New("selector: run already started")

	// ErrNetworkBusy indicates another run holds the network.
	ErrNetworkBusy = errors.New("selector: network is claimed by another run")

	// ErrRecorder wraps a Recorder failure; the run stops at that point.
	ErrRecorder = errors.New("selector: recorder failed")
)

// Rejection reasons for candidates leaving the pool without being built.
const (
	ReasonUnbuildable = "endpoints are disconnected"
	ReasonNegative    = "negative benefit" // guard; benefit totals are non-negative
)

// Selection is one committed road.
type Selection struct {
	Round         int          `json:"round"`
	Key           core.EdgeKey `json:"road"`
	Benefit       float64      `json:"benefit"`
	Weight        float64      `json:"weight"`
	CurrentLength float64      `json:"current_length"`
	Volume        int          `json:"traffic_volume"`
}

// RoundReport is the immutable snapshot of one completed selection round.
type RoundReport struct {
	Round int `json:"round"`
	// Edges is the network after this round's commits.
	Edges []core.EdgeRecord `json:"edges"`
	// Traffic is this round's per-road load.
	Traffic []traffic.Record `json:"traffic"`
	// Stats summarizes Traffic.
	Stats traffic.Stats `json:"stats"`
	// Iterations is the number of assignment rounds behind Traffic.
	Iterations int `json:"iterations"`
	// History holds periodic load snapshots when enabled.
	History []traffic.Snapshot `json:"history,omitempty"`
	// Trips and Unreachable count routed and unroutable trips.
	Trips       int `json:"trips"`
	Unreachable int `json:"unreachable"`
	// Ranking is every pooled candidate, best first.
	Ranking []benefit.Score `json:"ranking"`
	// Committed lists the roads built this round.
	Committed []Selection `json:"committed"`
	// Rejected lists candidates dropped this round.
	Rejected []benefit.Rejection `json:"rejected,omitempty"`
}

// Result is the outcome of a run.
type Result struct {
	// Selected is every committed road, in commit order.
	Selected []Selection `json:"selected"`
	// Edges is the final network.
	Edges []core.EdgeRecord `json:"edges"`
	// Traffic is the load of the last completed assignment.
	Traffic []traffic.Record `json:"traffic"`
	// Rounds is the number of completed selection rounds.
	Rounds int `json:"rounds"`
	// Remaining is the candidate pool left at the end.
	Remaining []core.EdgeKey `json:"remaining"`
	// Rejected lists every candidate refused during preflight or dropped later.
	Rejected []benefit.Rejection `json:"rejected,omitempty"`
}

// Recorder receives snapshots for persistence or presentation.
// Implementations may retain the values; they are never mutated afterwards.
type Recorder interface {
	RecordRound(RoundReport) error
	RecordFinal(Result) error
}

func (r *Result) clone() Result {
	c := *r
	c.Selected = append([]Selection(nil), r.Selected...)
	c.Edges = append([]core.EdgeRecord(nil), r.Edges...)
	c.Traffic = append([]traffic.Record(nil), r.Traffic...)
	c.Remaining = append([]core.EdgeKey(nil), r.Remaining...)
	c.Rejected = append([]benefit.Rejection(nil), r.Rejected...)

	return c
}
