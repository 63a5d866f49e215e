package ports

import (
	"context"

	"github.com/aretw0/tng/pkg/domain"
)

// RunStore defines the interface for persisting run records, so results
// can be fetched again after the run completed.
type RunStore interface {
	// Save persists the record under its ID.
	Save(ctx context.Context, rec *domain.RunRecord) error

	// Load retrieves a record by ID.
	// Returns domain.ErrRunNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.RunRecord, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error
}
