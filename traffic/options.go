package traffic

import (
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadnet/dijkstra"
)

// Sentinel errors for Assign.
var (
	// ErrNilGraph indicates a nil network.
	ErrNilGraph = errors.New("traffic: graph is nil")

	// ErrInsufficientNodes indicates a network with fewer than two junctions.
	ErrInsufficientNodes = errors.New("traffic: at least two junctions are required")

	// ErrBadParameter indicates a non-positive agent or round count, a negative
	// interval, or an Oracle bound to a different network.
	ErrBadParameter = errors.New("traffic: invalid parameter")
)

// Defaults for Assign.
const (
	DefaultAgents         = 100
	DefaultRounds         = 36000
	DefaultUpdateInterval = 500
	DefaultSeed           = int64(1)
)

// Progress is emitted during assignment for presentation layers.
// Path is the most recent routed trip so far. It can date from an earlier
// round when the reporting round routed none, and is nil until a trip is
// routed.
type Progress struct {
	Round int
	Total int
	Path  []string
}

// Options configures one assignment run.
type Options struct {
	Agents         int
	Rounds         int
	UpdateInterval int
	HistoryStride  int
	Rand           *rand.Rand
	Oracle         *dijkstra.Oracle
	Progress       func(Progress)
	Logger         logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the stock run: 100 agents × 36000 rounds, progress
// every 500 rounds, seed 1, no history.
func DefaultOptions() Options {
	return Options{
		Agents:         DefaultAgents,
		Rounds:         DefaultRounds,
		UpdateInterval: DefaultUpdateInterval,
		Logger:         logrus.StandardLogger(),
	}
}

// WithAgents sets the number of trips per round.
func WithAgents(n int) Option { return func(o *Options) { o.Agents = n } }

// WithRounds sets the number of assignment rounds.
func WithRounds(n int) Option { return func(o *Options) { o.Rounds = n } }

// WithUpdateInterval sets the progress stride in rounds; 0 reports only on completion.
func WithUpdateInterval(n int) Option { return func(o *Options) { o.UpdateInterval = n } }

// WithHistory records a Table snapshot every stride rounds; 0 disables it.
func WithHistory(stride int) Option { return func(o *Options) { o.HistoryStride = stride } }

// WithRand sets the trip sampler. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("traffic: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed seeds a private trip sampler.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithOracle reuses a shortest-path Oracle bound to the same network.
func WithOracle(or *dijkstra.Oracle) Option { return func(o *Options) { o.Oracle = or } }

// WithProgress registers a progress callback. It runs on the assignment
// goroutine and must not block.
func WithProgress(fn func(Progress)) Option { return func(o *Options) { o.Progress = fn } }

// WithLogger sets the logger. nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
