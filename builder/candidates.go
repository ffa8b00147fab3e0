// SPDX-License-Identifier: MIT
// Package: roadnet/builder
//
// candidates.go - enumeration of buildable roads and the reference scenario.

package builder

import (
	"github.com/katalvlaran/roadnet/core"
)

// Candidates lists junction pairs that are not yet joined by a road, as
// canonical keys in (U asc, V asc) order. limit > 0 truncates the list;
// limit ≤ 0 returns every absent pair. A nil graph yields nil.
//
// Complexity: O(V²) time.
func Candidates(g *core.Graph, limit int) []core.EdgeKey {
	if g == nil {
		return nil
	}
	vs := g.Vertices()
	var out []core.EdgeKey
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if g.HasEdge(vs[i], vs[j]) {
				continue
			}
			out = append(out, core.Key(vs[i], vs[j]))
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}

	return out
}

// Scenario5Edges is the five-junction reference network.
var Scenario5Edges = []core.EdgeRecord{
	{From: "0", To: "1", Weight: 6},
	{From: "0", To: "4", Weight: 9},
	{From: "1", To: "3", Weight: 11},
	{From: "2", To: "4", Weight: 10},
	{From: "3", To: "4", Weight: 7},
}

// Scenario5Candidates are the roads proposed for Scenario5Edges, in
// insertion order.
var Scenario5Candidates = []core.EdgeKey{
	core.Key("0", "2"),
	core.Key("0", "3"),
	core.Key("1", "2"),
	core.Key("1", "4"),
	core.Key("2", "3"),
}

// Scenario5 builds the reference network and returns a fresh copy of its
// candidate list.
func Scenario5() (*core.Graph, []core.EdgeKey, error) {
	g, err := BuildGraph(nil, Edges(Scenario5Edges))
	if err != nil {
		return nil, nil, err
	}

	return g, append([]core.EdgeKey(nil), Scenario5Candidates...), nil
}
