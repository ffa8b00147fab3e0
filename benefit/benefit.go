package benefit

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/traffic"
)

// Sentinel errors.
var (
	// ErrInvalidCandidate indicates a self pair, an unknown junction or a road
	// that already exists.
	ErrInvalidCandidate = errors.New("benefit: invalid candidate")

	// ErrBadShrinkage indicates a shrinkage factor outside (0,1).
	ErrBadShrinkage = errors.New("benefit: shrinkage must be in (0,1)")

	// ErrNilOracle indicates an Evaluator without a shortest-path Oracle.
	ErrNilOracle = errors.New("benefit: oracle is nil")

	// ErrBadDemandMode indicates an unknown demand mode.
	ErrBadDemandMode = errors.New("benefit: unknown demand mode")
)

// DefaultShrinkage is the stock ratio of new road length to current route length.
const DefaultShrinkage = 0.8

// DemandMode selects how trip volume between two junctions is measured.
type DemandMode int

const (
	// DemandOD reads origin–destination trip counts.
	DemandOD DemandMode = iota
	// DemandEdgeLoad reads the per-road trip load.
	DemandEdgeLoad
)

// String returns "od" or "edge".
func (m DemandMode) String() string {
	switch m {
	case DemandOD:
		return "od"
	case DemandEdgeLoad:
		return "edge"
	default:
		return fmt.Sprintf("DemandMode(%d)", int(m))
	}
}

// ParseDemandMode maps "od" and "edge" (case-insensitive) to a DemandMode.
func ParseDemandMode(s string) (DemandMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "od":
		return DemandOD, nil
	case "edge":
		return DemandEdgeLoad, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDemandMode, s)
}

// Score is the evaluation of one candidate road.
// When Buildable is false every numeric field except Volume is zero.
type Score struct {
	Key            core.EdgeKey `json:"road"`
	Direct         float64      `json:"direct"`
	Indirect       float64      `json:"indirect"`
	Total          float64      `json:"benefit"`
	CurrentLength  float64      `json:"current_length"`
	ProposedLength float64      `json:"proposed_weight"`
	Volume         int          `json:"traffic_volume"`
	Buildable      bool         `json:"buildable"`
}

// Rejection names a candidate refused before scoring and why.
type Rejection struct {
	Key    core.EdgeKey `json:"road"`
	Reason string       `json:"reason"`
}

// Evaluator scores candidates against the network its Oracle is bound to.
type Evaluator struct {
	Oracle    *dijkstra.Oracle
	Shrinkage float64
	Mode      DemandMode
}

// NewEvaluator returns an Evaluator with DefaultShrinkage and DemandOD.
func NewEvaluator(o *dijkstra.Oracle) *Evaluator {
	return &Evaluator{Oracle: o, Shrinkage: DefaultShrinkage, Mode: DemandOD}
}

// Validate checks the evaluator configuration.
func (e *Evaluator) Validate() error {
	if e.Oracle == nil {
		return ErrNilOracle
	}
	if !(e.Shrinkage > 0 && e.Shrinkage < 1) {
		return fmt.Errorf("%w: got %g", ErrBadShrinkage, e.Shrinkage)
	}
	if e.Mode != DemandOD && e.Mode != DemandEdgeLoad {
		return fmt.Errorf("%w: %d", ErrBadDemandMode, int(e.Mode))
	}

	return nil
}

// Check reports whether {x, y} may be scored: distinct, both present, and
// not yet joined by a road.
func (e *Evaluator) Check(x, y string) error {
	if e.Oracle == nil {
		return ErrNilOracle
	}
	g := e.Oracle.Graph()
	switch {
	case x == y:
		return fmt.Errorf("%w: self pair %q", ErrInvalidCandidate, x)
	case !g.HasVertex(x):
		return fmt.Errorf("%w: unknown junction %q", ErrInvalidCandidate, x)
	case !g.HasVertex(y):
		return fmt.Errorf("%w: unknown junction %q", ErrInvalidCandidate, y)
	case g.HasEdge(x, y):
		return fmt.Errorf("%w: road %s already exists", ErrInvalidCandidate, core.Key(x, y))
	}

	return nil
}

// Score evaluates the candidate road {x, y}. table and demand may be nil,
// which reads as zero volume everywhere.
//
// Errors: ErrNilOracle, ErrBadShrinkage, ErrBadDemandMode, ErrInvalidCandidate.
func (e *Evaluator) Score(table *traffic.Table, demand *traffic.Demand, x, y string) (Score, error) {
	if err := e.Validate(); err != nil {
		return Score{}, err
	}
	if err := e.Check(x, y); err != nil {
		return Score{}, err
	}

	vol := e.volumeFn(table, demand)
	s := Score{Key: core.Key(x, y), Volume: vol(x, y)}

	cur := e.Oracle.PathLength(x, y)
	if !finite(cur) {
		return s, nil
	}
	proposed := cur * e.Shrinkage
	s.Buildable = true
	s.CurrentLength = cur
	s.ProposedLength = proposed
	s.Direct = (cur - proposed) * float64(s.Volume)
	s.Indirect = e.indirect(vol, x, y, proposed)
	s.Total = s.Direct + s.Indirect
	if !finite(s.Total) {
		s.Direct, s.Indirect, s.Total = 0, 0, 0
	}

	return s, nil
}

// indirect sums the savings of neighbor pairs that would reroute through {x, y}.
func (e *Evaluator) indirect(vol func(a, b string) int, x, y string, proposed float64) float64 {
	g := e.Oracle.Graph()
	nY, errY := g.NeighborIDs(y)
	nX, errX := g.NeighborIDs(x)
	if errY != nil || errX != nil {
		return 0
	}

	sum := 0.0
	for _, n1 := range nY {
		for _, n2 := range nX {
			if n1 == n2 {
				continue
			}
			v := vol(n1, n2)
			if v == 0 {
				continue
			}
			legX := e.Oracle.PathLength(x, n1)
			legY := e.Oracle.PathLength(y, n2)
			orig := e.Oracle.PathLength(n1, n2)
			if !finite(legX) || !finite(legY) || !finite(orig) {
				continue
			}
			if h := legX + proposed + legY; h < orig {
				sum += (orig - h) * float64(v)
			}
		}
	}

	return sum
}

func (e *Evaluator) volumeFn(table *traffic.Table, demand *traffic.Demand) func(a, b string) int {
	if e.Mode == DemandEdgeLoad {
		return func(a, b string) int {
			if table == nil {
				return 0
			}
			return table.Count(a, b)
		}
	}

	return func(a, b string) int {
		if demand == nil {
			return 0
		}
		return demand.Count(a, b)
	}
}

// Rank scores every candidate and returns the valid ones sorted by Total,
// descending, ties kept in candidate order. Invalid or duplicate candidates
// are returned as rejections. The error is non-nil only for a misconfigured
// Evaluator.
func (e *Evaluator) Rank(table *traffic.Table, demand *traffic.Demand, cands []core.EdgeKey) ([]Score, []Rejection, error) {
	if err := e.Validate(); err != nil {
		return nil, nil, err
	}
	var (
		ranked   = make([]Score, 0, len(cands))
		rejected []Rejection
		seen     = make(map[core.EdgeKey]bool, len(cands))
	)
	for _, c := range cands {
		k := core.Key(c.U, c.V)
		if seen[k] {
			rejected = append(rejected, Rejection{Key: k, Reason: "duplicate candidate"})
			continue
		}
		seen[k] = true

		s, err := e.Score(table, demand, c.U, c.V)
		if err != nil {
			rejected = append(rejected, Rejection{Key: k, Reason: err.Error()})
			continue
		}
		ranked = append(ranked, s)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Total > ranked[j].Total })

	return ranked, rejected, nil
}

func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
