// File: selector.go
// Role: The greedy selection loop: assign, score, commit, repeat.
// Determinism:
//   - One sampler drives every assignment; ranking ties keep pool order.
// Concurrency:
//   - Run is single-shot and claims the network (core.Graph.Claim) for its
//     duration, so two Selectors never grow the same network at once.
//     ctx is checked between phases, never inside a commit.

package selector

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadnet/benefit"
	"github.com/katalvlaran/roadnet/bfs"
	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/traffic"
)

// Selector grows a network by repeatedly committing the best candidate roads.
type Selector struct {
	g    *core.Graph
	pool []core.EdgeKey

	cfg           config.Config
	rec           Recorder
	log           logrus.FieldLogger
	progress      func(int, traffic.Progress)
	rng           *rand.Rand
	hook          func(from, to State)
	historyStride int

	state   atomic.Int32
	started atomic.Bool
}

// New prepares a run over g with the given candidate pool. The pool is copied.
//
// Errors: ErrNilGraph, traffic.ErrInsufficientNodes, config.ErrInvalidConfig.
func New(g *core.Graph, candidates []core.EdgeKey, opts ...Option) (*Selector, error) {
	s := &Selector{
		g:    g,
		pool: append([]core.EdgeKey(nil), candidates...),
		cfg:  config.Default(),
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if n := g.VertexCount(); n < 2 {
		return nil, fmt.Errorf("%w: got %d", traffic.ErrInsufficientNodes, n)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	if s.historyStride < 0 {
		return nil, fmt.Errorf("%w: history stride must be ≥ 0, got %d", config.ErrInvalidConfig, s.historyStride)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(s.cfg.Seed))
	}

	return s, nil
}

// State returns the current phase.
func (s *Selector) State() State { return State(s.state.Load()) }

// Pool returns a copy of the candidates not yet committed or dropped.
// Safe to call only when Run is not in progress.
func (s *Selector) Pool() []core.EdgeKey { return append([]core.EdgeKey(nil), s.pool...) }

func (s *Selector) enter(to State) {
	from := State(s.state.Swap(int32(to)))
	if from != to {
		s.log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("selector state change")
	}
	if s.hook != nil {
		s.hook(from, to)
	}
}

// Run executes selection rounds until the pool is empty or MaxRounds rounds
// have completed. On cancellation it returns the result as of the last
// completed commit together with ctx.Err().
//
// Errors: ErrNetworkBusy, ErrAlreadyRun, ErrRecorder, context errors, and
// anything the assignment or scoring stages report.
func (s *Selector) Run(ctx context.Context) (*Result, error) {
	if !s.g.Claim() {
		return nil, ErrNetworkBusy
	}
	defer s.g.Release()
	if !s.started.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRun
	}

	oracle, err := dijkstra.NewOracle(s.g, dijkstra.WithCacheSize(s.cfg.CacheSize))
	if err != nil {
		return nil, err
	}
	mode, err := benefit.ParseDemandMode(s.cfg.DemandMode)
	if err != nil {
		return nil, err
	}
	r := &run{
		Selector: s,
		oracle:   oracle,
		eval:     &benefit.Evaluator{Oracle: oracle, Shrinkage: s.cfg.Shrinkage, Mode: mode},
		res:      &Result{},
	}
	r.preflight()

	for round := 1; ; round++ {
		if len(s.pool) == 0 {
			s.log.WithField("round", round).Info("candidate pool exhausted")
			break
		}
		if round > s.cfg.MaxRounds {
			s.log.WithField("remaining", len(s.pool)).Info("round limit reached")
			break
		}
		if err := r.round(ctx, round); err != nil {
			return r.finish(err)
		}
	}

	return r.finish(nil)
}

// run is the mutable state of one Run.
type run struct {
	*Selector
	oracle *dijkstra.Oracle
	eval   *benefit.Evaluator
	res    *Result
}

// preflight drops invalid candidates and logs disconnected networks.
func (r *run) preflight() {
	valid := r.pool[:0]
	seen := make(map[core.EdgeKey]bool, len(r.pool))
	for _, c := range r.pool {
		k := core.Key(c.U, c.V)
		reason := ""
		if seen[k] {
			reason = "duplicate candidate"
		} else if err := r.eval.Check(c.U, c.V); err != nil {
			reason = err.Error()
		}
		if reason != "" {
			r.reject(k, reason)
			continue
		}
		seen[k] = true
		valid = append(valid, k)
	}
	r.pool = valid

	if comps := bfs.Components(r.g); len(comps) > 1 {
		r.log.WithField("components", len(comps)).Warn("network is disconnected; cross-component trips are unroutable")
	}
	r.log.WithFields(logrus.Fields{
		"junctions":  r.g.VertexCount(),
		"roads":      r.g.EdgeCount(),
		"candidates": len(r.pool),
	}).Info("selection starting")
}

func (r *run) reject(k core.EdgeKey, reason string) {
	r.log.WithFields(logrus.Fields{"road": k.String(), "reason": reason}).Warn("candidate rejected")
	r.res.Rejected = append(r.res.Rejected, benefit.Rejection{Key: k, Reason: reason})
}

// round performs one Assigning → Scoring → Committing pass.
func (r *run) round(ctx context.Context, round int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.enter(Assigning)
	opts := []traffic.Option{
		traffic.WithAgents(r.cfg.Agents),
		traffic.WithRounds(r.cfg.Rounds),
		traffic.WithUpdateInterval(r.cfg.UpdateInterval),
		traffic.WithHistory(r.historyStride),
		traffic.WithRand(r.rng),
		traffic.WithOracle(r.oracle),
		traffic.WithLogger(r.log),
	}
	if r.progress != nil {
		fn := r.progress
		opts = append(opts, traffic.WithProgress(func(p traffic.Progress) { fn(round, p) }))
	}
	flow, err := traffic.Assign(ctx, r.g, opts...)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.enter(Scoring)
	ranked, rejected, err := r.eval.Rank(flow.Table, flow.Demand, r.pool)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.enter(Committing)
	report := RoundReport{
		Round:       round,
		Traffic:     flow.Table.Records(),
		Stats:       traffic.Summarize(flow.Table),
		Iterations:  flow.Rounds,
		History:     flow.History,
		Trips:       flow.Trips,
		Unreachable: flow.Unreachable,
		Ranking:     ranked,
	}
	drop := make(map[core.EdgeKey]bool, r.cfg.RoadsPerRound+len(rejected))
	for _, rj := range rejected {
		drop[rj.Key] = true
		report.Rejected = append(report.Rejected, rj)
		r.reject(rj.Key, rj.Reason)
	}
	for i := 0; i < len(ranked) && i < r.cfg.RoadsPerRound; i++ {
		sc := ranked[i]
		drop[sc.Key] = true
		reason := ""
		switch {
		case !sc.Buildable:
			reason = ReasonUnbuildable
		case sc.Total < 0:
			// Not reachable with the current terms: Direct ≥ 0 and Indirect
			// sums only positive savings.
			reason = ReasonNegative
		default:
			if err := r.g.AddEdgeStrict(sc.Key.U, sc.Key.V, sc.ProposedLength); err != nil {
				reason = err.Error()
			}
		}
		if reason != "" {
			report.Rejected = append(report.Rejected, benefit.Rejection{Key: sc.Key, Reason: reason})
			r.reject(sc.Key, reason)
			continue
		}

		sel := Selection{
			Round:         round,
			Key:           sc.Key,
			Benefit:       sc.Total,
			Weight:        sc.ProposedLength,
			CurrentLength: sc.CurrentLength,
			Volume:        sc.Volume,
		}
		report.Committed = append(report.Committed, sel)
		r.res.Selected = append(r.res.Selected, sel)
		r.log.WithFields(logrus.Fields{
			"round":   round,
			"road":    sc.Key.String(),
			"benefit": sc.Total,
			"weight":  sc.ProposedLength,
		}).Info("road committed")
	}

	kept := r.pool[:0]
	for _, c := range r.pool {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	r.pool = kept
	r.res.Rounds = round
	r.res.Traffic = report.Traffic
	report.Edges = r.g.Snapshot()

	if r.rec != nil {
		if err := r.rec.RecordRound(report); err != nil {
			return fmt.Errorf("%w: round %d: %v", ErrRecorder, round, err)
		}
	}

	return nil
}

// finish moves to Done, fills the final fields and hands a copy of the result
// to the recorder. A cancelled run is recorded too; cause wins over a
// recorder failure.
func (r *run) finish(cause error) (*Result, error) {
	r.enter(Done)
	r.res.Edges = r.g.Snapshot()
	r.res.Remaining = append([]core.EdgeKey(nil), r.pool...)

	fields := logrus.Fields{
		"rounds":    r.res.Rounds,
		"committed": len(r.res.Selected),
		"remaining": len(r.res.Remaining),
	}
	if cause != nil {
		r.log.WithFields(fields).WithError(cause).Warn("selection stopped")
	} else {
		r.log.WithFields(fields).Info("selection finished")
	}

	if r.rec != nil {
		if err := r.rec.RecordFinal(r.res.clone()); err != nil {
			if cause != nil {
				r.log.WithError(err).Error("recording final state failed")
				return r.res, cause
			}
			return r.res, fmt.Errorf("%w: final: %v", ErrRecorder, err)
		}
	}

	return r.res, cause
}
