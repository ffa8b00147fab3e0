package recorder

import (
	"sync"

	"github.com/katalvlaran/roadnet/selector"
)

// Memory keeps every report in memory.
type Memory struct {
	mu     sync.RWMutex
	rounds []selector.RoundReport
	final  *selector.Result
}

// NewMemory returns an empty Memory recorder.
func NewMemory() *Memory { return &Memory{} }

// RecordRound implements selector.Recorder.
func (m *Memory) RecordRound(r selector.RoundReport) error {
	m.mu.Lock()
	m.rounds = append(m.rounds, r)
	m.mu.Unlock()

	return nil
}

// RecordFinal implements selector.Recorder.
func (m *Memory) RecordFinal(r selector.Result) error {
	m.mu.Lock()
	m.final = &r
	m.mu.Unlock()

	return nil
}

// Rounds returns the recorded round reports in order.
func (m *Memory) Rounds() []selector.RoundReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]selector.RoundReport(nil), m.rounds...)
}

// Latest returns the most recent round report, if any.
func (m *Memory) Latest() (selector.RoundReport, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.rounds) == 0 {
		return selector.RoundReport{}, false
	}

	return m.rounds[len(m.rounds)-1], true
}

// Final returns the recorded end-of-run result, if the run has finished.
func (m *Memory) Final() (selector.Result, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.final == nil {
		return selector.Result{}, false
	}

	return *m.final, true
}
