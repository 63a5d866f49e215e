// Package file provides a ports.ProgramSource over a directory of
// program files (.tng, .yaml or .yml).
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/loader"
)

var extensions = []string{".tng", ".yaml", ".yml"}

// Source resolves programs by base name from a directory. "copy" matches
// copy.tng, copy.yaml or copy.yml, in that order.
type Source struct {
	dir string
}

// NewSource creates a source rooted at dir. The directory must exist.
func NewSource(dir string) (*Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("program directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("program directory: %s is not a directory", dir)
	}
	return &Source{dir: dir}, nil
}

// Load parses the named program file.
func (s *Source) Load(name string) (*domain.Program, error) {
	for _, ext := range extensions {
		path := filepath.Join(s.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return loader.LoadFile(path)
		}
	}
	return nil, domain.ErrProgramNotFound
}

// List returns the base names of all program files, sorted and
// deduplicated.
func (s *Source) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		known := false
		for _, want := range extensions {
			if ext == want {
				known = true
				break
			}
		}
		if !known {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
