package domain

import "time"

// RunRecord is the persisted summary of a completed run, as stored by a
// ports.RunStore and served by the HTTP API.
type RunRecord struct {
	ID      string `json:"id"`
	Program string `json:"program,omitempty"`
	Input   string `json:"input"`

	Outcome Outcome `json:"outcome"`
	Steps   uint64  `json:"steps"`
	State   State   `json:"state"`
	// Read is the unmatched symbol when the run got stuck.
	Read string `json:"read,omitempty"`

	Tape string `json:"tape"`
	Head int    `json:"head"`

	CreatedAt time.Time `json:"created_at"`
}

// NewRunRecord flattens a Result into its storable form.
func NewRunRecord(id, program, input string, res *Result) *RunRecord {
	rec := &RunRecord{
		ID:        id,
		Program:   program,
		Input:     input,
		Outcome:   res.Outcome,
		Steps:     res.Steps,
		State:     res.State,
		CreatedAt: time.Now().UTC(),
	}
	if res.Outcome == OutcomeStuck {
		rec.Read = res.Read.String()
	}
	if res.Tape != nil {
		rec.Tape = res.Tape.String()
		rec.Head = res.Tape.Head()
	}
	return rec
}
