package domain

// Outcome classifies how a run terminated. All four are normal terminal
// values of the run operation, not errors: a stuck or unbounded machine
// is an expected, analyzable result of running an arbitrary transition
// table.
type Outcome string

const (
	// OutcomeHalted means a halting state was reached.
	OutcomeHalted Outcome = "halted"
	// OutcomeStuck means no rule matched the current (state, symbol).
	OutcomeStuck Outcome = "stuck"
	// OutcomeRejected means a declared rejecting state was reached.
	OutcomeRejected Outcome = "rejected"
	// OutcomeBudgetExceeded means the step budget ran out while the
	// machine was still running.
	OutcomeBudgetExceeded Outcome = "budget_exceeded"
)

// Result is the terminal value of a run.
type Result struct {
	Outcome Outcome

	// Steps is the number of transitions applied before termination.
	Steps uint64

	// State is the machine state at termination: the halting or
	// rejecting state reached, the state the machine got stuck in, or
	// the state it was in when the budget ran out.
	State State

	// Read is the symbol under the head for which no rule matched.
	// Only meaningful when Outcome is OutcomeStuck.
	Read Symbol

	// Tape is the final tape, head resting where the last applied rule
	// left it.
	Tape *Tape
}

// Halted reports whether the run reached a halting state.
func (r *Result) Halted() bool {
	return r.Outcome == OutcomeHalted
}
