// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn        ("0","1","2",...)
//   • rng      = nil                (stochastic constructors demand WithSeed/WithRand)
//   • weightFn = DefaultWeightFn    (every road costs DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next road weight. Policies that yield a non-positive
// value fall back to DefaultEdgeWeight so core never rejects a generated road.
func (c builderConfig) weight() float64 {
	w := c.weightFn(c.rng)
	if !(w > 0) {
		return DefaultEdgeWeight
	}

	return w
}
