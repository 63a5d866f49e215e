package memory

import (
	"sort"

	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/loader"
)

// Source implements ports.ProgramSource over an in-memory map of program
// sources in the tng text format. Parsing happens on Load, so a Source
// can hold invalid drafts without failing construction.
type Source struct {
	programs map[string]string
}

// NewSource creates a source from name to program text.
func NewSource(programs map[string]string) *Source {
	copied := make(map[string]string, len(programs))
	for k, v := range programs {
		copied[k] = v
	}
	return &Source{programs: copied}
}

// Load parses and validates the named program.
func (s *Source) Load(name string) (*domain.Program, error) {
	src, ok := s.programs[name]
	if !ok {
		return nil, domain.ErrProgramNotFound
	}
	return loader.ParseString(src)
}

// List returns all program names, sorted.
func (s *Source) List() ([]string, error) {
	names := make([]string, 0, len(s.programs))
	for name := range s.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
