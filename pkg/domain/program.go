package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyHaltingSet is returned when a program declares no halting state.
var ErrEmptyHaltingSet = errors.New("halting set is empty")

// UnknownInitialStateError reports an initial state that appears nowhere
// in the program: not on either side of a rule and not in the halting or
// rejecting sets. Such a program can only get stuck on its first step,
// so construction rejects it eagerly.
type UnknownInitialStateError struct {
	State State
}

func (e *UnknownInitialStateError) Error() string {
	return fmt.Sprintf("initial state q%d appears nowhere in the program", e.State)
}

// Program is an immutable bundle of a transition table with the declared
// initial, halting and rejecting states. A Program may be shared across
// any number of concurrent runs; each run owns its own tape and current
// state exclusively.
type Program struct {
	table     *TransitionTable
	initial   State
	halting   map[State]struct{}
	rejecting map[State]struct{}
}

// ProgramOption configures optional parts of a Program.
type ProgramOption func(*Program)

// WithRejectingStates declares states that terminate a run with the
// Rejected outcome.
func WithRejectingStates(states ...State) ProgramOption {
	return func(p *Program) {
		for _, s := range states {
			p.rejecting[s] = struct{}{}
		}
	}
}

// NewProgram assembles a runnable machine description. It validates
// eagerly: the halting set must be non-empty, no state may be both
// halting and rejecting, and the initial state must be referenced
// somewhere in the program. An initial state that is itself halting is
// valid; such a machine halts immediately without consulting the table.
func NewProgram(table *TransitionTable, initial State, halting []State, opts ...ProgramOption) (*Program, error) {
	if table == nil {
		return nil, errors.New("transition table is required")
	}
	if len(halting) == 0 {
		return nil, ErrEmptyHaltingSet
	}

	p := &Program{
		table:     table,
		initial:   initial,
		halting:   make(map[State]struct{}, len(halting)),
		rejecting: make(map[State]struct{}),
	}
	for _, s := range halting {
		p.halting[s] = struct{}{}
	}
	for _, opt := range opts {
		opt(p)
	}

	for s := range p.rejecting {
		if _, both := p.halting[s]; both {
			return nil, fmt.Errorf("state q%d is both halting and rejecting", s)
		}
	}

	if !p.knows(initial) {
		return nil, &UnknownInitialStateError{State: initial}
	}

	return p, nil
}

// knows reports whether a state is referenced anywhere in the program.
func (p *Program) knows(s State) bool {
	if _, ok := p.halting[s]; ok {
		return true
	}
	if _, ok := p.rejecting[s]; ok {
		return true
	}
	for _, r := range p.table.Rules() {
		if r.From == s || r.To == s {
			return true
		}
	}
	return false
}

// Table returns the program's transition table.
func (p *Program) Table() *TransitionTable {
	return p.table
}

// Initial returns the declared initial state.
func (p *Program) Initial() State {
	return p.initial
}

// IsHalting reports whether s belongs to the halting set.
func (p *Program) IsHalting(s State) bool {
	_, ok := p.halting[s]
	return ok
}

// IsRejecting reports whether s belongs to the rejecting set.
func (p *Program) IsRejecting(s State) bool {
	_, ok := p.rejecting[s]
	return ok
}

// Halting returns the halting set in ascending order.
func (p *Program) Halting() []State {
	return sortedStates(p.halting)
}

// Rejecting returns the rejecting set in ascending order.
func (p *Program) Rejecting() []State {
	return sortedStates(p.rejecting)
}

func sortedStates(set map[State]struct{}) []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
