package selector

import "fmt"

// State is a phase of the selection loop.
type State int32

const (
	Idle State = iota
	Assigning
	Scoring
	Committing
	Done
)

// String returns the lower-case phase name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Assigning:
		return "assigning"
	case Scoring:
		return "scoring"
	case Committing:
		return "committing"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}
