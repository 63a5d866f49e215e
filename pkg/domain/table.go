package domain

import (
	"fmt"
	"sort"
)

type ruleKey struct {
	state State
	read  Symbol
}

// TransitionTable is an immutable lookup structure mapping a
// (state, symbol) pair to the action to perform. Construction enforces
// that at most one rule exists per pair, so dispatch is fully
// deterministic; there is no rule-order priority or fallthrough.
type TransitionTable struct {
	rules map[ruleKey]Action
}

// DuplicateRuleError reports two rules sharing a (state, symbol) key.
type DuplicateRuleError struct {
	State State
	Read  Symbol
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("duplicate rule for (q%d, %q)", e.State, rune(e.Read))
}

// NewTransitionTable builds a table from the given rules. It fails with
// a DuplicateRuleError if two rules share the same (from, read) pair.
func NewTransitionTable(rules []Rule) (*TransitionTable, error) {
	m := make(map[ruleKey]Action, len(rules))
	for _, r := range rules {
		key := ruleKey{state: r.From, read: r.Read}
		if _, exists := m[key]; exists {
			return nil, &DuplicateRuleError{State: r.From, Read: r.Read}
		}
		m[key] = r.Action()
	}
	return &TransitionTable{rules: m}, nil
}

// Lookup returns the action for the given (state, symbol) pair. The
// second return is false when no rule matches. Blank is a normal symbol
// here, not an implicit wildcard.
func (t *TransitionTable) Lookup(state State, read Symbol) (Action, bool) {
	act, ok := t.rules[ruleKey{state: state, read: read}]
	return act, ok
}

// Len returns the number of rules in the table.
func (t *TransitionTable) Len() int {
	return len(t.rules)
}

// Rules returns every rule in the table, sorted by (from, read) for
// deterministic iteration. Used by introspection tools; the engine
// itself only ever calls Lookup.
func (t *TransitionTable) Rules() []Rule {
	out := make([]Rule, 0, len(t.rules))
	for key, act := range t.rules {
		out = append(out, Rule{
			From:  key.state,
			Read:  key.read,
			To:    act.To,
			Write: act.Write,
			Move:  act.Move,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Read < out[j].Read
	})
	return out
}
