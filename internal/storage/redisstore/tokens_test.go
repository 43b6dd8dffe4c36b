package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagheerabbass/talenttrack/internal/storage"
)

func newTestStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewTokenStore(client), mr
}

func TestTokenStore_SaveAndResolve(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.Save(ctx, "token-abc", "user-123", time.Hour)
	require.NoError(t, err)

	userID, err := store.UserID(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenStore_UnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.UserID(context.Background(), "never-issued")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTokenStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-abc", "user-123", time.Hour))
	require.NoError(t, store.Delete(ctx, "token-abc"))

	_, err := store.UserID(ctx, "token-abc")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTokenStore_DeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "never-issued"))
}

func TestTokenStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-abc", "user-123", time.Minute))

	// miniredis only advances its clock manually
	mr.FastForward(2 * time.Minute)

	_, err := store.UserID(ctx, "token-abc")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
