package session

import (
	"context"
	"os"
	"testing"

	"carameche/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(testClient(t), zerolog.Nop())

	cart := domain.Cart{Entries: []domain.CartEntry{
		{Card: domain.Card{ID: "1", Name: "Charizard", PriceCents: 24900, Stock: 3}, Quantity: 2},
	}}
	require.NoError(t, store.Put(ctx, "test-session", cart))

	got, err := store.Get(ctx, "test-session")
	require.NoError(t, err)
	assert.Equal(t, cart, got)

	require.NoError(t, store.Delete(ctx, "test-session"))
	got, err = store.Get(ctx, "test-session")
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
}

func TestRedisStore_CorruptSlotDiscarded(t *testing.T) {
	ctx := context.Background()
	client := testClient(t)
	store := NewRedisStore(client, zerolog.Nop())

	require.NoError(t, client.Set(ctx, "cart:corrupt-session", "{not json", 0).Err())

	got, err := store.Get(ctx, "corrupt-session")
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
}

func TestRedisStore_SeriesSlot(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(testClient(t), zerolog.Nop())

	series := []domain.Series{{ID: "7", Name: "Base Set", CardCount: 102}}
	store.PutSeries(ctx, series)

	got, ok := store.GetSeries(ctx)
	require.True(t, ok)
	assert.Equal(t, series, got)
}
