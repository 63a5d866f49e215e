package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tng/pkg/adapters/redis"
	"github.com/aretw0/tng/pkg/domain"
	"github.com/aretw0/tng/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunStoreContract(t, store)
}

func TestRedisStore_TTLExpiration(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	rec := &domain.RunRecord{ID: "ttl-run", Outcome: domain.OutcomeStuck, Steps: 3}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Load(ctx, "ttl-run")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeStuck, got.Outcome)

	// miniredis advances expiry virtually.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "ttl-run")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.RunRecord{ID: "abc"}))
	assert.True(t, mr.Exists("custom:abc"))
}
