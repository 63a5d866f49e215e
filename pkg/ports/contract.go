package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/tng/pkg/domain"
)

// RunStoreContract exercises the RunStore interface guarantees against
// any implementation. Adapter test suites call this so every backend
// honors the same semantics.
func RunStoreContract(t *testing.T, store RunStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	if err != domain.ErrRunNotFound {
		t.Errorf("Load(missing) error = %v, want domain.ErrRunNotFound", err)
	}

	rec := &domain.RunRecord{
		ID:        "contract-run",
		Program:   "copy",
		Input:     "111",
		Outcome:   domain.OutcomeHalted,
		Steps:     42,
		State:     6,
		Tape:      "_111_111",
		Head:      0,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Outcome != rec.Outcome || got.Steps != rec.Steps || got.Tape != rec.Tape {
		t.Errorf("Load returned %+v, want %+v", got, rec)
	}

	// Saving again under the same ID overwrites.
	rec2 := *rec
	rec2.Steps = 43
	if err := store.Save(ctx, &rec2); err != nil {
		t.Fatalf("Save (overwrite) failed: %v", err)
	}
	got, err = store.Load(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Load after overwrite failed: %v", err)
	}
	if got.Steps != 43 {
		t.Errorf("overwrite not applied: steps = %d, want 43", got.Steps)
	}

	if err := store.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, rec.ID); err != domain.ErrRunNotFound {
		t.Errorf("Load after delete error = %v, want domain.ErrRunNotFound", err)
	}
}
