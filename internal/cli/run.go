package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/tng"
	"github.com/aretw0/tng/internal/presentation/tui"
	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/loader"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Path   string // program file (.tng, .yaml, .yml)
	Tape   string
	Budget uint64
	Trace  bool
	JSON   bool
	Debug  bool
}

// Run executes a program file against an input tape and prints the
// result. Trace mode streams one line per applied step; JSON mode
// emits the finished run record instead of the human summary.
func Run(opts RunOptions) error {
	if opts.Trace && opts.JSON {
		return fmt.Errorf("--trace and --json cannot be used together")
	}

	logger := createLogger(opts.Debug)

	program, err := loader.LoadFile(opts.Path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.Path, err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	tape := domain.ParseTape(opts.Tape)
	engineOpts := []tng.Option{tng.WithLogger(logger)}
	if opts.Budget > 0 {
		engineOpts = append(engineOpts, tng.WithStepBudget(opts.Budget))
	}

	if opts.Trace {
		runner := &tng.Runner{Output: os.Stdout}
		if isTerminal() {
			runner.Renderer = tui.ColorTrace
		}
		_, err := runner.Run(ctx, program, tape, engineOpts...)
		return handleInterrupt(err)
	}

	engine, err := tng.New(program, engineOpts...)
	if err != nil {
		return err
	}
	res, err := engine.Run(ctx, tape)
	if err != nil {
		return handleInterrupt(err)
	}

	if opts.JSON {
		name := strings.TrimSuffix(filepath.Base(opts.Path), filepath.Ext(opts.Path))
		record := domain.NewRunRecord(uuid.NewString(), name, opts.Tape, res)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	printResult(res)
	return nil
}

func printResult(res *domain.Result) {
	switch res.Outcome {
	case domain.OutcomeHalted:
		fmt.Printf("halted in q%d after %d steps\n", res.State, res.Steps)
		fmt.Printf("tape: %s\n", res.Tape)
		fmt.Printf("head: %d\n", res.Tape.Head())
	case domain.OutcomeRejected:
		fmt.Printf("rejected in q%d after %d steps\n", res.State, res.Steps)
		fmt.Printf("tape: %s\n", res.Tape)
	case domain.OutcomeStuck:
		fmt.Printf("stuck in q%d reading %q after %d steps\n", res.State, rune(res.Read), res.Steps)
		fmt.Printf("tape: %s\n", res.Tape)
	case domain.OutcomeBudgetExceeded:
		fmt.Printf("step budget exhausted after %d steps\n", res.Steps)
	}
}
