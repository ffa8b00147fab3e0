package recorder_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/builder"
	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/recorder"
	"github.com/katalvlaran/roadnet/selector"
)

// runScenario runs two selection rounds on the five-junction network.
func runScenario(t *testing.T, rec selector.Recorder, opts ...selector.Option) *selector.Result {
	t.Helper()
	g, cands, err := builder.Scenario5()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Rounds = 20
	cfg.MaxRounds = 2
	logger, _ := test.NewNullLogger()
	opts = append(opts, selector.WithConfig(cfg), selector.WithLogger(logger), selector.WithRecorder(rec))
	s, err := selector.New(g, cands, opts...)
	require.NoError(t, err)
	res, err := s.Run(context.Background())
	require.NoError(t, err)

	return res
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestMemory_RecordsRun(t *testing.T) {
	m := recorder.NewMemory()
	_, ok := m.Latest()
	assert.False(t, ok)
	_, ok = m.Final()
	assert.False(t, ok)

	res := runScenario(t, m)

	rounds := m.Rounds()
	require.Len(t, rounds, 2)
	latest, ok := m.Latest()
	require.True(t, ok)
	assert.Equal(t, 2, latest.Round)

	final, ok := m.Final()
	require.True(t, ok)
	assert.Equal(t, res.Selected, final.Selected)
	assert.Equal(t, res.Edges, final.Edges)

	// The returned slice is a copy.
	rounds[0].Round = 99
	assert.Equal(t, 1, m.Rounds()[0].Round)
}

func TestMemory_ConcurrentReaders(t *testing.T) {
	m := recorder.NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Latest()
				m.Rounds()
				m.Final()
			}
		}()
	}
	for i := 1; i <= 50; i++ {
		require.NoError(t, m.RecordRound(selector.RoundReport{Round: i}))
	}
	wg.Wait()
	assert.Len(t, m.Rounds(), 50)
}

func TestCSV_WritesRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	c, err := recorder.NewCSV(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, c.Dir())

	res := runScenario(t, c, selector.WithHistory(10))

	edges, err := recorder.ReadEdgesFile(filepath.Join(dir, recorder.EdgesFile))
	require.NoError(t, err)
	assert.Equal(t, res.Edges, edges)
	assert.Len(t, edges, len(builder.Scenario5Edges)+2)

	sel := readAll(t, filepath.Join(dir, recorder.SelectedFile))
	require.Len(t, sel, 3)
	assert.Equal(t, []string{"round", "road", "benefit", "weight", "current_length", "traffic_volume"}, sel[0])
	assert.Equal(t, "1", sel[1][0])
	assert.Equal(t, res.Selected[0].Key.String(), sel[1][1])

	// Five candidates ranked in round one, four in round two.
	evals := readAll(t, filepath.Join(dir, recorder.EvaluationsFile))
	assert.Len(t, evals, 1+5+4)
	assert.Equal(t, "current_weight", evals[0][5])

	// History at iterations 10 and 20 covers the final load, so no extra block.
	counts := readAll(t, filepath.Join(dir, recorder.TrafficFile))
	iterations := map[string]bool{}
	for _, row := range counts[1:] {
		iterations[row[1]] = true
	}
	assert.Equal(t, map[string]bool{"10": true, "20": true}, iterations)
}

func TestCSV_WithoutHistoryWritesFinalLoad(t *testing.T) {
	dir := t.TempDir()
	c, err := recorder.NewCSV(dir)
	require.NoError(t, err)
	runScenario(t, c)

	counts := readAll(t, filepath.Join(dir, recorder.TrafficFile))
	require.Greater(t, len(counts), 1)
	for _, row := range counts[1:] {
		assert.Equal(t, "20", row[1])
	}
}

func TestCSV_NewTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, recorder.EvaluationsFile)
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

	_, err := recorder.NewCSV(dir)
	require.NoError(t, err)
	rows := readAll(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, "round", rows[0][0])
}

func TestReadEdges(t *testing.T) {
	in := "weight,TO,from\n6, 1 ,0\n2.5,3,2\n"
	got, err := recorder.ReadEdges(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeRecord{
		{From: "0", To: "1", Weight: 6},
		{From: "2", To: "3", Weight: 2.5},
	}, got)

	g, err := core.FromRecords(got)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestReadEdges_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"missing col": "From,To\n0,1\n",
		"bad weight":  "From,To,Weight\n0,1,abc\n",
		"short row":   "From,To,Weight\n0,1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := recorder.ReadEdges(strings.NewReader(in))
			assert.ErrorIs(t, err, recorder.ErrBadCSV)
		})
	}

	_, err := recorder.ReadEdgesFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
