package ports

import "github.com/aretw0/tng/pkg/domain"

// ProgramSource defines how named programs are resolved. This keeps the
// storage layer (directory of files, in-memory map) decoupled from the
// engine and the serving layer.
type ProgramSource interface {
	// Load resolves a program by name. It returns a fully validated
	// Program or domain.ErrProgramNotFound.
	Load(name string) (*domain.Program, error)

	// List returns the names of all available programs, sorted.
	List() ([]string, error)
}
