// Package validator performs static checks on programs beyond the hard
// construction invariants: it reports suspicious but legal constructs
// the way a linter would.
package validator

import (
	"fmt"
	"sort"

	"github.com/aretw0/tng/pkg/domain"
)

// Warning is an advisory finding; the program remains runnable.
type Warning struct {
	Msg string
}

func (w Warning) String() string {
	return w.Msg
}

// Check inspects a validated program and returns warnings for:
//
//   - rules keyed on a halting or rejecting state (dead code, terminal
//     markers are checked before any lookup, so such rules never fire)
//   - states unreachable from the initial state through the rule graph
func Check(p *domain.Program) []Warning {
	var warnings []Warning

	rules := p.Table().Rules()
	for _, r := range rules {
		if p.IsHalting(r.From) {
			warnings = append(warnings, Warning{
				Msg: fmt.Sprintf("rule on halting state q%d never fires", r.From),
			})
		}
		if p.IsRejecting(r.From) {
			warnings = append(warnings, Warning{
				Msg: fmt.Sprintf("rule on rejecting state q%d never fires", r.From),
			})
		}
	}

	// Flood the rule graph from the initial state. Symbols are ignored:
	// reachability here is the coarse "could any input get there".
	reachable := map[domain.State]struct{}{p.Initial(): {}}
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if _, ok := reachable[r.From]; !ok {
				continue
			}
			if _, ok := reachable[r.To]; !ok {
				reachable[r.To] = struct{}{}
				changed = true
			}
		}
	}

	all := map[domain.State]struct{}{}
	for _, r := range rules {
		all[r.From] = struct{}{}
		all[r.To] = struct{}{}
	}
	for _, s := range p.Halting() {
		all[s] = struct{}{}
	}
	for _, s := range p.Rejecting() {
		all[s] = struct{}{}
	}

	var unreachable []domain.State
	for s := range all {
		if _, ok := reachable[s]; !ok {
			unreachable = append(unreachable, s)
		}
	}
	sort.Slice(unreachable, func(i, j int) bool { return unreachable[i] < unreachable[j] })
	for _, s := range unreachable {
		warnings = append(warnings, Warning{
			Msg: fmt.Sprintf("state q%d is unreachable from the initial state", s),
		})
	}

	return warnings
}
