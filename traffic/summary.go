package traffic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/roadnet/core"
)

// Stats describes the load distribution over the roads in a Table.
type Stats struct {
	Roads   int          `json:"roads"`
	Total   float64      `json:"total"`
	Mean    float64      `json:"mean"`
	StdDev  float64      `json:"stddev"`
	Max     float64      `json:"max"`
	Busiest core.EdgeKey `json:"busiest"`
}

// Summarize computes load statistics of t. Every road in the table takes
// part, tracked idle roads included. An empty or nil table yields the zero
// Stats.
func Summarize(t *Table) Stats {
	if t == nil || t.Len() == 0 {
		return Stats{}
	}
	keys := t.Keys()
	loads := make([]float64, len(keys))
	for i, k := range keys {
		loads[i] = float64(t.CountKey(k))
	}

	s := Stats{
		Roads: len(loads),
		Total: floats.Sum(loads),
	}
	if len(loads) == 1 {
		s.Mean = loads[0]
	} else {
		s.Mean, s.StdDev = stat.MeanStdDev(loads, nil)
	}
	idx := floats.MaxIdx(loads)
	s.Max, s.Busiest = loads[idx], keys[idx]

	return s
}
