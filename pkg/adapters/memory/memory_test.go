package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tng/pkg/adapters/memory"
	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunStoreContract(t, memory.NewStore())
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	rec := &domain.RunRecord{ID: "r1", Input: "111", Outcome: domain.OutcomeHalted, Steps: 7}
	require.NoError(t, store.Save(ctx, rec))

	// Mutating the original must not affect the stored copy.
	rec.Steps = 99

	got, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.Steps)

	require.NoError(t, store.Delete(ctx, "r1"))
	_, err = store.Load(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestSource(t *testing.T) {
	source := memory.NewSource(map[string]string{
		"trivial": "+0\n-0\n",
		"broken":  "0,1,1,1,r\n",
	})

	names, err := source.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "trivial"}, names)

	p, err := source.Load("trivial")
	require.NoError(t, err)
	assert.True(t, p.IsHalting(p.Initial()))

	_, err = source.Load("broken")
	assert.Error(t, err, "parsing happens on Load")

	_, err = source.Load("missing")
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
}
