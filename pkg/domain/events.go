package domain

import "context"

// StepEvent describes one applied transition.
type StepEvent struct {
	// Step is the 1-based count of transitions applied so far.
	Step uint64

	From  State
	Read  Symbol
	To    State
	Wrote Symbol
	Move  Direction

	// Head is the head position after the move.
	Head int
}

// Hooks defines optional callbacks for engine observability. A nil
// callback is skipped. Hooks run synchronously between steps; a slow
// hook slows the machine down.
type Hooks struct {
	OnStep func(context.Context, *StepEvent)
	OnDone func(context.Context, *Result)
}
