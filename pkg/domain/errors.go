package domain

import "errors"

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrProgramNotFound is returned when a program source does not know the
// requested name.
var ErrProgramNotFound = errors.New("program not found")
