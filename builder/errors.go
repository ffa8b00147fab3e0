// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX).
//   • Implementations attach context with %w, prefixed by the constructor name.
//   • Validation priority: sizes → probabilities → RNG presence → construction.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, k) below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDegree indicates a lattice degree that is odd or not below n.
var ErrInvalidDegree = errors.New("builder: invalid lattice degree")

// ErrConstructFailed indicates the builder could not complete a topology,
// including a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
