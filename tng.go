package tng

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/tng/internal/runtime"
	"github.com/aretw0/tng/pkg/domain"
)

// DefaultStepBudget is the budget applied when none is configured.
const DefaultStepBudget = runtime.DefaultStepBudget

// Engine is the high-level entry point for the tng library. It wraps
// the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	program *domain.Program

	runtimeOpts []runtime.EngineOption
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStepBudget caps the number of transitions per run.
func WithStepBudget(n uint64) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithStepBudget(n))
	}
}

// WithHooks registers observability callbacks invoked on every applied
// step and on termination.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithHooks(hooks))
	}
}

// New initializes an Engine for a program. The program must already be
// validated; use pkg/loader to parse one from text, or assemble it via
// pkg/domain constructors.
func New(program *domain.Program, opts ...Option) (*Engine, error) {
	if program == nil {
		return nil, fmt.Errorf("program is required")
	}

	eng := &Engine{program: program}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized so we don't pass nil to the runtime.
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	runtimeOpts := append([]runtime.EngineOption{
		runtime.WithLogger(eng.logger),
	}, eng.runtimeOpts...)

	eng.runtime = runtime.NewEngine(program, runtimeOpts...)
	return eng, nil
}

// Run executes the program against the tape until it halts, gets stuck,
// reaches a rejecting state or exhausts the step budget. A nil tape
// runs on an all-blank tape.
func (e *Engine) Run(ctx context.Context, tape *domain.Tape) (*domain.Result, error) {
	return e.runtime.Run(ctx, tape)
}

// RunString is Run over a tape parsed from text, the head starting on
// the first non-blank cell.
func (e *Engine) RunString(ctx context.Context, input string) (*domain.Result, error) {
	return e.runtime.Run(ctx, domain.ParseTape(input))
}

// Program returns the program this engine executes.
func (e *Engine) Program() *domain.Program {
	return e.program
}
