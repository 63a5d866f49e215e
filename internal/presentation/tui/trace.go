package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/tng/pkg/domain"
)

// ColorTrace renders one applied step for an interactive terminal: the
// entered state is tinted, the head cell is highlighted in place of the
// plain bracket notation. Falls back gracefully on dumb terminals via
// termenv's profile detection.
func ColorTrace(ev *domain.StepEvent, tape *domain.Tape) string {
	p := termenv.ColorProfile()

	state := termenv.String(fmt.Sprintf("q%-3d", ev.To)).Foreground(p.Color("#818cf8")).String()

	lo, hi, ok := tape.Bounds()
	if !ok {
		return fmt.Sprintf("%6d  %s  %s", ev.Step, state, headCell(p, domain.Blank))
	}

	var b strings.Builder
	snap := tape.Snapshot()
	head := tape.Head()
	for i, s := range snap {
		if lo+i == head {
			b.WriteString(headCell(p, s))
			continue
		}
		b.WriteRune(rune(s))
	}
	if head < lo || head > hi {
		b.WriteByte(' ')
		b.WriteString(headCell(p, domain.Blank))
	}
	return fmt.Sprintf("%6d  %s  %s", ev.Step, state, b.String())
}

func headCell(p termenv.Profile, s domain.Symbol) string {
	return termenv.String(string(rune(s))).Reverse().Foreground(p.Color("#f472b6")).String()
}
