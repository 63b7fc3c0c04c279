package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(Config{TTL: time.Minute})
	ctx := context.Background()
	userID := uuid.New()

	sessionID, err := store.Create(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	got, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore(Config{TTL: time.Minute})

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore(Config{TTL: time.Minute})
	ctx := context.Background()

	sessionID, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, sessionID))
	require.NoError(t, store.Delete(ctx, sessionID))

	_, err = store.Get(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(Config{TTL: 20 * time.Millisecond})
	ctx := context.Background()

	sessionID, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = store.Get(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionIDsAreUnique(t *testing.T) {
	store := NewMemoryStore(Config{TTL: time.Minute})
	ctx := context.Background()

	a, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)
	b, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
