/*
Package tng is a deterministic Turing machine engine: it executes
quintuple transition tables against an unbounded bidirectional tape.

The engine interprets any well-formed program, not just the samples: a
transition table maps (state, symbol) pairs to (next state, write, move)
actions, the tape grows in both directions on demand, and every run
terminates with one of four outcomes: Halted, Stuck (no rule matched),
Rejected (a declared error state was reached) or BudgetExceeded. A stuck
or looping machine is an analyzable result, not a crash; the only error
a run returns is context cancellation.

# Key Properties

  - Deterministic execution: at most one rule per (state, symbol) pair,
    enforced at construction, so step outcomes are fully reproducible.
  - Unbounded tape: writes arbitrarily far left or right of the origin
    extend the tape; unwritten cells read as the blank symbol.
  - Mandatory step budget: the model permits infinite loops, so every
    run carries a budget and stops with BudgetExceeded instead of
    spinning forever.
  - Shareable programs: a Program is immutable; concurrent runs each own
    their tape and need no locking.

# Usage

Parse a program with pkg/loader, then run it:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/tng"
		"github.com/aretw0/tng/pkg/domain"
		"github.com/aretw0/tng/pkg/loader"
	)

	func main() {
		program, err := loader.LoadFile("examples/copy.tng")
		if err != nil {
			log.Fatal(err)
		}

		engine, err := tng.New(program, tng.WithStepBudget(100_000))
		if err != nil {
			log.Fatal(err)
		}

		res, err := engine.Run(context.Background(), domain.ParseTape("111111"))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Outcome, res.Tape)
	}
*/
package tng
