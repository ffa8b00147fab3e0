// File: table.go
// Role: Canonical pair counters (Table, Demand) and their immutable records.
// Determinism:
//   - Records() sorted by canonical key.

package traffic

import (
	"sort"

	"github.com/katalvlaran/roadnet/core"
)

// Record is one immutable counter entry, in canonical orientation.
type Record struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// pairCounts maps canonical junction pairs to non-negative counts.
// Every read and write goes through core.Key.
type pairCounts struct {
	m map[core.EdgeKey]int
}

func newPairCounts() pairCounts {
	return pairCounts{m: make(map[core.EdgeKey]int)}
}

// Inc adds one to the pair {u, v}; orientation does not matter.
func (p pairCounts) Inc(u, v string) { p.m[core.Key(u, v)]++ }

// Add adds n (n > 0) to the pair {u, v}. Non-positive n is ignored.
func (p pairCounts) Add(u, v string, n int) {
	if n > 0 {
		p.m[core.Key(u, v)] += n
	}
}

// track registers k with a zero counter unless it is already present.
func (p pairCounts) track(k core.EdgeKey) {
	if _, ok := p.m[k]; !ok {
		p.m[k] = 0
	}
}

// Count returns the counter of the pair {u, v}, 0 when never incremented.
func (p pairCounts) Count(u, v string) int { return p.m[core.Key(u, v)] }

// CountKey returns the counter stored under k.
func (p pairCounts) CountKey(k core.EdgeKey) int { return p.m[k] }

// Total sums all counters.
func (p pairCounts) Total() int {
	sum := 0
	for _, c := range p.m {
		sum += c
	}

	return sum
}

// Len is the number of distinct pairs present, tracked zeros included.
func (p pairCounts) Len() int { return len(p.m) }

// Keys returns the counted pairs sorted canonically.
func (p pairCounts) Keys() []core.EdgeKey {
	keys := make([]core.EdgeKey, 0, len(p.m))
	for k := range p.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	return keys
}

// Records returns an immutable, sorted copy of every counter, tracked zeros
// included.
func (p pairCounts) Records() []Record {
	keys := p.Keys()
	out := make([]Record, len(keys))
	for i, k := range keys {
		out[i] = Record{From: k.U, To: k.V, Count: p.m[k]}
	}

	return out
}

func (p pairCounts) clone() pairCounts {
	c := pairCounts{m: make(map[core.EdgeKey]int, len(p.m))}
	for k, v := range p.m {
		c.m[k] = v
	}

	return c
}

// Table is the per-road trip load of one assignment run.
type Table struct{ pairCounts }

// NewTable returns an empty Table.
func NewTable() *Table { return &Table{newPairCounts()} }

// Clone returns an independent copy.
func (t *Table) Clone() *Table { return &Table{t.clone()} }

// Track lists the road {u, v} with a zero load if it has none yet, so idle
// roads still appear in Keys and Records.
func (t *Table) Track(u, v string) { t.track(core.Key(u, v)) }

// Demand counts routed trips per origin–destination pair.
type Demand struct{ pairCounts }

// NewDemand returns an empty Demand.
func NewDemand() *Demand { return &Demand{newPairCounts()} }

// Clone returns an independent copy.
func (d *Demand) Clone() *Demand { return &Demand{d.clone()} }

// TableFromRecords rebuilds a Table from records; orientation is normalized.
// Zero-count records are kept as tracked roads.
func TableFromRecords(recs []Record) *Table {
	t := NewTable()
	for _, r := range recs {
		t.Track(r.From, r.To)
		t.Add(r.From, r.To, r.Count)
	}

	return t
}
