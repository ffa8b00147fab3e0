package selector

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/traffic"
)

// Option configures a Selector.
type Option func(*Selector)

// WithConfig replaces the run parameters. Validated by New.
func WithConfig(c config.Config) Option {
	return func(s *Selector) { s.cfg = c }
}

// WithRecorder registers a snapshot consumer.
func WithRecorder(r Recorder) Option {
	return func(s *Selector) { s.rec = r }
}

// WithLogger sets the logger. nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Selector) {
		if l != nil {
			s.log = l
		}
	}
}

// WithProgress receives assignment progress tagged with the selection round.
// It runs on the Run goroutine and must not block.
func WithProgress(fn func(round int, p traffic.Progress)) Option {
	return func(s *Selector) { s.progress = fn }
}

// WithRand sets the trip sampler shared by all rounds. Panics on nil.
// Without it, a sampler seeded from Config.Seed is used.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("selector: WithRand(nil)")
	}
	return func(s *Selector) { s.rng = r }
}

// WithStateHook observes every state transition.
func WithStateHook(fn func(from, to State)) Option {
	return func(s *Selector) { s.hook = fn }
}

// WithHistory records a load snapshot every stride assignment rounds and
// attaches them to each RoundReport.
func WithHistory(stride int) Option {
	return func(s *Selector) { s.historyStride = stride }
}
