// Package selector runs the greedy road-augmentation loop.
//
// Each selection round walks the state machine
//
//	Idle → Assigning → Scoring → Committing → (Assigning | Done)
//
// Assigning runs a fresh traffic assignment on the current network. Scoring
// scores every pooled candidate and stably sorts them by benefit, descending.
// Committing resolves the top k candidates from that single ranking.
// Buildable candidates with non-negative benefit become roads whose length is
// the proposed length computed while scoring; unbuildable or negative-benefit
// candidates are dropped and reported. Either way the top k leave the pool,
// so a run over c candidates ends within ceil(c/k) rounds.
//
// The run stops when the pool is empty or MaxRounds rounds have completed.
//
// Preflight rejects a nil network or one with fewer than two junctions
// before any work, leaving the network unchanged. Candidates that are self
// pairs, reference unknown junctions, already exist or repeat an earlier
// candidate are rejected and logged before the first round.
//
// Cancellation is checked between phases. A cancelled run returns the last
// fully committed state together with the context error.
//
// A Selector owns its network for the duration of Run and is single-shot.
// Run claims the network, so a second Selector on the same network fails
// with ErrNetworkBusy until the first run returns.
// Recorders receive immutable copies of every snapshot.
package selector
