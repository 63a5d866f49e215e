/*
Package domain contains the core domain models for the tng engine.

It defines the fundamental entities of a Turing machine: the Tape, the
Rule quintuples grouped into an immutable TransitionTable, the Program
that bundles a table with its declared initial, halting and rejecting
states, and the Result a run terminates with. This package is kept pure
and free of I/O or persistence concerns; parsing lives in pkg/loader and
the stepping loop in internal/runtime.

# Key Entities

  - Symbol: an atomic tape cell value, including the reserved Blank.
  - Rule: a quintuple (from, read, to, write, move).
  - TransitionTable: at most one Rule per (state, symbol) pair.
  - Program: the immutable, runnable machine description.
  - Tape: the unbounded bidirectional working buffer with a single head.
  - Result: the terminal value of a run (halted, stuck, rejected, or
    budget exceeded), never an exception thrown mid-computation.
*/
package domain
