// File: assign.go
// Role: Traffic assignment: rounds × agents shortest-path trips accumulated
//       into a fresh Table and Demand.
// Determinism:
//   - Trips are drawn from the sorted junction list with the configured RNG.
// Concurrency:
//   - ctx is checked between rounds; the network is never mutated.

package traffic

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
)

// Snapshot is the Table as it stood after Iteration rounds.
type Snapshot struct {
	Iteration int      `json:"iteration"`
	Counts    []Record `json:"traffic_counts"`
}

// Result is the outcome of one assignment run.
type Result struct {
	// Table is the per-road trip load. Every road of the network is present;
	// roads no trip used hold 0.
	Table *Table
	// Demand counts routed trips per origin–destination pair.
	Demand *Demand
	// Trips is the number of routed (reachable) trips.
	Trips int
	// Unreachable is the number of sampled trips with no route.
	Unreachable int
	// Hops is the summed edge count of all routed trips; equals Table.Total().
	Hops int
	// Rounds is the number of completed rounds.
	Rounds int
	// History holds periodic snapshots when WithHistory is set.
	History []Snapshot
}

// Assign routes Rounds × Agents synthetic trips over g and returns the
// accumulated loads.
//
// Preconditions (in order): g non-nil (ErrNilGraph), at least two junctions
// (ErrInsufficientNodes), Agents ≥ 1, Rounds ≥ 1, UpdateInterval ≥ 0,
// HistoryStride ≥ 0 and an Oracle bound to g (ErrBadParameter).
//
// On cancellation the partial loads are discarded and ctx.Err() is returned.
//
// Complexity: O(R·A·(L + cost of an Oracle miss)), L = path length in edges.
func Assign(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if n := g.VertexCount(); n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientNodes, n)
	}
	if err := o.validate(g); err != nil {
		return nil, err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(DefaultSeed))
	}
	if o.Oracle == nil {
		or, err := dijkstra.NewOracle(g)
		if err != nil {
			return nil, err
		}
		o.Oracle = or
	}

	a := &assigner{
		opts:     o,
		vertices: g.Vertices(),
		res: &Result{
			Table:  NewTable(),
			Demand: NewDemand(),
		},
	}
	for _, e := range g.Edges() {
		a.res.Table.Track(e.From, e.To)
	}
	if err := a.run(ctx); err != nil {
		return nil, err
	}

	o.Logger.WithFields(logrus.Fields{
		"rounds":      a.res.Rounds,
		"trips":       a.res.Trips,
		"unreachable": a.res.Unreachable,
		"roads":       a.res.Table.Len(),
	}).Debug("traffic assignment completed")

	return a.res, nil
}

func (o Options) validate(g *core.Graph) error {
	switch {
	case o.Agents < 1:
		return fmt.Errorf("%w: agents must be ≥ 1, got %d", ErrBadParameter, o.Agents)
	case o.Rounds < 1:
		return fmt.Errorf("%w: rounds must be ≥ 1, got %d", ErrBadParameter, o.Rounds)
	case o.UpdateInterval < 0:
		return fmt.Errorf("%w: update interval must be ≥ 0, got %d", ErrBadParameter, o.UpdateInterval)
	case o.HistoryStride < 0:
		return fmt.Errorf("%w: history stride must be ≥ 0, got %d", ErrBadParameter, o.HistoryStride)
	case o.Oracle != nil && o.Oracle.Graph() != g:
		return fmt.Errorf("%w: oracle is bound to another network", ErrBadParameter)
	}

	return nil
}

// assigner holds the mutable state of one run.
type assigner struct {
	opts     Options
	vertices []string
	res      *Result
	lastPath []string
}

func (a *assigner) run(ctx context.Context) error {
	total := a.opts.Rounds
	reported := 0
	for r := 1; r <= total; r++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for i := 0; i < a.opts.Agents; i++ {
			a.trip()
		}
		a.res.Rounds = r

		if s := a.opts.HistoryStride; s > 0 && r%s == 0 {
			a.res.History = append(a.res.History, Snapshot{Iteration: r, Counts: a.res.Table.Records()})
		}
		if iv := a.opts.UpdateInterval; iv > 0 && r%iv == 0 {
			a.report(r)
			reported = r
		}
	}
	if reported != total {
		a.report(total)
	}

	return nil
}

// trip samples one origin–destination pair without replacement and routes it.
func (a *assigner) trip() {
	n := len(a.vertices)
	i := a.opts.Rand.Intn(n)
	j := a.opts.Rand.Intn(n - 1)
	if j >= i {
		j++
	}
	src, dst := a.vertices[i], a.vertices[j]

	path, ok := a.opts.Oracle.Path(src, dst)
	if !ok {
		a.res.Unreachable++
		return
	}
	for k := 0; k+1 < len(path); k++ {
		a.res.Table.Inc(path[k], path[k+1])
	}
	a.res.Demand.Inc(src, dst)
	a.res.Trips++
	a.res.Hops += len(path) - 1
	a.lastPath = path
}

func (a *assigner) report(round int) {
	if a.opts.Progress == nil {
		return
	}
	var path []string
	if a.lastPath != nil {
		path = append([]string(nil), a.lastPath...)
	}
	a.opts.Progress(Progress{Round: round, Total: a.opts.Rounds, Path: path})
}
