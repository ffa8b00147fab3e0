// Package config holds the planner's run parameters: defaults, validation
// and loading from an optional .env file plus ROADNET_* environment variables.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Demand modes understood by the benefit evaluator.
const (
	DemandOD       = "od"
	DemandEdgeLoad = "edge"
)

// Defaults.
const (
	DefaultAgents         = 100
	DefaultRounds         = 36000
	DefaultShrinkage      = 0.8
	DefaultRoadsPerRound  = 1
	DefaultMaxRounds      = 10
	DefaultUpdateInterval = 500
	DefaultSeed           = int64(1)
	DefaultCacheSize      = 1024
	DefaultAddr           = ":8080"
)

// Config is one planner run's parameters.
type Config struct {
	// Agents is the number of trips generated per assignment round.
	Agents int `json:"agents" env:"ROADNET_AGENTS"`
	// Rounds is the number of assignment rounds per traffic simulation.
	Rounds int `json:"rounds" env:"ROADNET_ROUNDS"`
	// Shrinkage is the length ratio of a new road to the route it replaces.
	Shrinkage float64 `json:"shrinkage" env:"ROADNET_SHRINKAGE"`
	// RoadsPerRound is k, the number of roads committed per selection round.
	RoadsPerRound int `json:"roads_per_round" env:"ROADNET_ROADS_PER_ROUND"`
	// MaxRounds caps the number of selection rounds.
	MaxRounds int `json:"max_rounds" env:"ROADNET_MAX_ROUNDS"`
	// UpdateInterval is the progress reporting stride in assignment rounds;
	// 0 reports only on completion.
	UpdateInterval int `json:"update_interval" env:"ROADNET_UPDATE_INTERVAL"`
	// Seed drives trip sampling.
	Seed int64 `json:"seed" env:"ROADNET_SEED"`
	// DemandMode selects how benefit measures demand: DemandOD or DemandEdgeLoad.
	DemandMode string `json:"demand_mode" env:"ROADNET_DEMAND_MODE"`
	// CacheSize bounds the shortest-path memo.
	CacheSize int `json:"cache_size" env:"ROADNET_CACHE_SIZE"`
	// Addr is the HTTP listen address for the serve command.
	Addr string `json:"-" env:"ROADNET_ADDR"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Agents:         DefaultAgents,
		Rounds:         DefaultRounds,
		Shrinkage:      DefaultShrinkage,
		RoadsPerRound:  DefaultRoadsPerRound,
		MaxRounds:      DefaultMaxRounds,
		UpdateInterval: DefaultUpdateInterval,
		Seed:           DefaultSeed,
		DemandMode:     DemandOD,
		CacheSize:      DefaultCacheSize,
		Addr:           DefaultAddr,
	}
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Agents < 1:
		return fmt.Errorf("%w: agents must be ≥ 1, got %d", ErrInvalidConfig, c.Agents)
	case c.Rounds < 1:
		return fmt.Errorf("%w: rounds must be ≥ 1, got %d", ErrInvalidConfig, c.Rounds)
	case !(c.Shrinkage > 0 && c.Shrinkage < 1):
		return fmt.Errorf("%w: shrinkage must be in (0,1), got %g", ErrInvalidConfig, c.Shrinkage)
	case c.RoadsPerRound < 1:
		return fmt.Errorf("%w: roads_per_round must be ≥ 1, got %d", ErrInvalidConfig, c.RoadsPerRound)
	case c.MaxRounds < 1:
		return fmt.Errorf("%w: max_rounds must be ≥ 1, got %d", ErrInvalidConfig, c.MaxRounds)
	case c.UpdateInterval < 0:
		return fmt.Errorf("%w: update_interval must be ≥ 0, got %d", ErrInvalidConfig, c.UpdateInterval)
	case c.DemandMode != DemandOD && c.DemandMode != DemandEdgeLoad:
		return fmt.Errorf("%w: demand_mode must be %q or %q, got %q", ErrInvalidConfig, DemandOD, DemandEdgeLoad, c.DemandMode)
	case c.CacheSize < 1:
		return fmt.Errorf("%w: cache_size must be ≥ 1, got %d", ErrInvalidConfig, c.CacheSize)
	}

	return nil
}
