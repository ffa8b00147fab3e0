// File: csv.go
// Role: Directory-backed recorder and the GraphEdges.csv reader.
// Concurrency:
//   - Writes are serialized by a mutex; each call opens, appends and closes.

package recorder

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/selector"
)

// Output file names.
const (
	EdgesFile       = "GraphEdges.csv"
	TrafficFile     = "TrafficCounts.csv"
	EvaluationsFile = "RoadEvaluations.csv"
	SelectedFile    = "SelectedRoads.csv"
)

// ErrBadCSV indicates a malformed edge file.
var ErrBadCSV = errors.New("recorder: malformed csv")

var headers = map[string][]string{
	EdgesFile:       {"From", "To", "Weight"},
	TrafficFile:     {"round", "iteration", "from", "to", "count"},
	EvaluationsFile: {"round", "road", "benefit", "traffic_volume", "proposed_weight", "current_weight", "buildable"},
	SelectedFile:    {"round", "road", "benefit", "weight", "current_length", "traffic_volume"},
}

// CSV writes a run into a directory. Existing output files are truncated
// by NewCSV.
type CSV struct {
	mu  sync.Mutex
	dir string
}

// NewCSV creates dir if needed and writes the header row of every
// per-round file. GraphEdges.csv and SelectedRoads.csv are written at the
// end of the run.
func NewCSV(dir string) (*CSV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("recorder: create %s: %w", dir, err)
	}
	c := &CSV{dir: dir}
	for _, name := range []string{TrafficFile, EvaluationsFile} {
		if err := c.write(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, [][]string{headers[name]}); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Dir returns the output directory.
func (c *CSV) Dir() string { return c.dir }

// RecordRound appends the round's load snapshots and candidate evaluations.
// Every history snapshot is written; the round's final load follows unless
// the last snapshot already covers it.
func (c *CSV) RecordRound(r selector.RoundReport) error {
	round := strconv.Itoa(r.Round)

	var counts [][]string
	last := 0
	for _, snap := range r.History {
		it := strconv.Itoa(snap.Iteration)
		for _, rec := range snap.Counts {
			counts = append(counts, []string{round, it, rec.From, rec.To, strconv.Itoa(rec.Count)})
		}
		last = snap.Iteration
	}
	if last != r.Iterations {
		it := strconv.Itoa(r.Iterations)
		for _, rec := range r.Traffic {
			counts = append(counts, []string{round, it, rec.From, rec.To, strconv.Itoa(rec.Count)})
		}
	}

	evals := make([][]string, 0, len(r.Ranking))
	for _, s := range r.Ranking {
		evals = append(evals, []string{
			round,
			s.Key.String(),
			formatFloat(s.Total),
			strconv.Itoa(s.Volume),
			formatFloat(s.ProposedLength),
			formatFloat(s.CurrentLength),
			strconv.FormatBool(s.Buildable),
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.write(TrafficFile, os.O_APPEND|os.O_WRONLY, counts); err != nil {
		return err
	}

	return c.write(EvaluationsFile, os.O_APPEND|os.O_WRONLY, evals)
}

// RecordFinal writes the final network and the committed roads.
func (c *CSV) RecordFinal(r selector.Result) error {
	edges := [][]string{headers[EdgesFile]}
	for _, e := range r.Edges {
		edges = append(edges, []string{e.From, e.To, formatFloat(e.Weight)})
	}
	sel := [][]string{headers[SelectedFile]}
	for _, s := range r.Selected {
		sel = append(sel, []string{
			strconv.Itoa(s.Round),
			s.Key.String(),
			formatFloat(s.Benefit),
			formatFloat(s.Weight),
			formatFloat(s.CurrentLength),
			strconv.Itoa(s.Volume),
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	const flags = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
	if err := c.write(EdgesFile, flags, edges); err != nil {
		return err
	}

	return c.write(SelectedFile, flags, sel)
}

func (c *CSV) write(name string, flags int, rows [][]string) error {
	path := filepath.Join(c.dir, name)
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("recorder: open %s: %w", name, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("recorder: write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("recorder: close %s: %w", name, err)
	}

	return nil
}

// ReadEdges parses a GraphEdges.csv stream. The header row is matched by
// name, case-insensitively, so column order is free.
func ReadEdges(r io.Reader) ([]core.EdgeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadCSV, err)
	}
	h := headerIndex(header)
	from, okF := h["from"]
	to, okT := h["to"]
	weight, okW := h["weight"]
	if !okF || !okT || !okW {
		return nil, fmt.Errorf("%w: header must name From, To and Weight", ErrBadCSV)
	}

	var out []core.EdgeRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadCSV, line, err)
		}
		if len(row) <= from || len(row) <= to || len(row) <= weight {
			return nil, fmt.Errorf("%w: line %d: short row", ErrBadCSV, line)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(row[weight]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q", ErrBadCSV, line, row[weight])
		}
		out = append(out, core.EdgeRecord{
			From:   strings.TrimSpace(row[from]),
			To:     strings.TrimSpace(row[to]),
			Weight: w,
		})
	}

	return out, nil
}

// ReadEdgesFile opens path and parses it with ReadEdges.
func ReadEdgesFile(path string) ([]core.EdgeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadEdges(f)
}

func headerIndex(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, h := range header {
		m[strings.ToLower(strings.TrimSpace(h))] = i
	}

	return m
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
