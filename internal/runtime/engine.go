package runtime

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/tng/pkg/domain"
)

// DefaultStepBudget bounds a run when the caller does not choose one.
// The model permits unbounded loops by construction, so running without
// any budget is treated as a resource hazard, not an option.
const DefaultStepBudget uint64 = 1_000_000

// Engine is the core stepping loop. It owns the current machine state of
// a run and delegates symbol reads, writes and moves to the tape, and
// rule lookups to the program's transition table.
type Engine struct {
	program *domain.Program
	budget  uint64
	logger  *slog.Logger
	hooks   domain.Hooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithStepBudget sets the maximum number of transitions a single run may
// apply before terminating with OutcomeBudgetExceeded. Zero keeps the
// default.
func WithStepBudget(n uint64) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.budget = n
		}
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine for one program. The engine itself is
// stateless between runs; each Run owns its configuration exclusively,
// so a single Engine may serve concurrent runs.
func NewEngine(program *domain.Program, opts ...EngineOption) *Engine {
	e := &Engine{
		program: program,
		budget:  DefaultStepBudget,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the program against the tape until a halting or rejecting
// state is reached, no rule matches, or the step budget runs out. All
// four of those are returned as Result values. The only error condition
// is context cancellation, observed between steps. A step is atomic and
// never interrupted mid-write.
func (e *Engine) Run(ctx context.Context, tape *domain.Tape) (*domain.Result, error) {
	if tape == nil {
		tape = domain.NewTape()
	}

	state := e.program.Initial()
	var steps uint64

	e.logger.Debug("run started", "initial", state, "budget", e.budget)

	for {
		// Terminal markers come first: a halting state never consults
		// the table and never touches the tape, even if a rule is keyed
		// on it.
		if e.program.IsHalting(state) {
			return e.finish(ctx, &domain.Result{
				Outcome: domain.OutcomeHalted,
				Steps:   steps,
				State:   state,
				Tape:    tape,
			})
		}
		if e.program.IsRejecting(state) {
			return e.finish(ctx, &domain.Result{
				Outcome: domain.OutcomeRejected,
				Steps:   steps,
				State:   state,
				Tape:    tape,
			})
		}

		if err := ctx.Err(); err != nil {
			e.logger.Debug("run cancelled", "state", state, "steps", steps)
			return nil, err
		}

		if steps >= e.budget {
			return e.finish(ctx, &domain.Result{
				Outcome: domain.OutcomeBudgetExceeded,
				Steps:   steps,
				State:   state,
				Tape:    tape,
			})
		}

		read := tape.Read()
		act, ok := e.program.Table().Lookup(state, read)
		if !ok {
			// Deterministic and reproducible: the same (state, symbol)
			// always gets stuck. Reported as an outcome, not a crash.
			return e.finish(ctx, &domain.Result{
				Outcome: domain.OutcomeStuck,
				Steps:   steps,
				State:   state,
				Read:    read,
				Tape:    tape,
			})
		}

		tape.Write(act.Write)
		tape.Move(act.Move)
		from := state
		state = act.To
		steps++

		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				Step:  steps,
				From:  from,
				Read:  read,
				To:    state,
				Wrote: act.Write,
				Move:  act.Move,
				Head:  tape.Head(),
			})
		}
	}
}

func (e *Engine) finish(ctx context.Context, res *domain.Result) (*domain.Result, error) {
	e.logger.Debug("run finished",
		"outcome", res.Outcome,
		"steps", res.Steps,
		"state", res.State,
	)
	if e.hooks.OnDone != nil {
		e.hooks.OnDone(ctx, res)
	}
	return res, nil
}
