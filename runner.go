package tng

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/tng/pkg/domain"
)

// Runner executes a program and writes a step-by-step trace using the
// provided IO. This allows for easy testing and integration with
// different frontends (plain CLI output, colored terminal rendering).
type Runner struct {
	Output   io.Writer
	Renderer TraceRenderer
}

// TraceRenderer formats one applied step for display. The tape is the
// live run tape, already reflecting the step's write and move.
type TraceRenderer func(ev *domain.StepEvent, tape *domain.Tape) string

// PlainTrace is the default renderer: step count, entered state and the
// tape window with the head cell bracketed.
func PlainTrace(ev *domain.StepEvent, tape *domain.Tape) string {
	lo, hi, ok := tape.Bounds()
	if !ok {
		return fmt.Sprintf("%6d  q%-3d  []", ev.Step, ev.To)
	}

	out := make([]byte, 0, hi-lo+3)
	snap := tape.Snapshot()
	head := tape.Head()
	for i, s := range snap {
		pos := lo + i
		switch pos {
		case head:
			out = append(out, '[')
			out = append(out, []byte(string(rune(s)))...)
			out = append(out, ']')
		default:
			out = append(out, []byte(string(rune(s)))...)
		}
	}
	if head < lo || head > hi {
		// Head is parked on a never-written cell outside the window.
		out = append(out, " [_]"...)
	}
	return fmt.Sprintf("%6d  q%-3d  %s", ev.Step, ev.To, out)
}

// Run executes the program against the tape, writing one line per step
// plus a terminal summary. Extra options (budget, logger) pass through
// to the engine.
func (r *Runner) Run(ctx context.Context, program *domain.Program, tape *domain.Tape, opts ...Option) (*domain.Result, error) {
	if r.Output == nil {
		return nil, fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	render := r.Renderer
	if render == nil {
		render = PlainTrace
	}
	if tape == nil {
		tape = domain.NewTape()
	}

	hooks := domain.Hooks{
		OnStep: func(_ context.Context, ev *domain.StepEvent) {
			fmt.Fprintln(r.Output, render(ev, tape))
		},
	}

	engine, err := New(program, append(opts, WithHooks(hooks))...)
	if err != nil {
		return nil, err
	}

	res, err := engine.Run(ctx, tape)
	if err != nil {
		return nil, err
	}

	switch res.Outcome {
	case domain.OutcomeStuck:
		fmt.Fprintf(r.Output, "stuck in q%d reading %q after %d steps\n", res.State, rune(res.Read), res.Steps)
	case domain.OutcomeRejected:
		fmt.Fprintf(r.Output, "rejected in q%d after %d steps\n", res.State, res.Steps)
	case domain.OutcomeBudgetExceeded:
		fmt.Fprintf(r.Output, "step budget exhausted after %d steps\n", res.Steps)
	default:
		fmt.Fprintf(r.Output, "halted in q%d after %d steps: %s\n", res.State, res.Steps, res.Tape)
	}
	return res, nil
}
