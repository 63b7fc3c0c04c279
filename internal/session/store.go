// Package session holds the server-side session state that binds a
// request cookie to an authenticated user.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session IDs to user IDs with a TTL.
type Store interface {
	// Create establishes a new session for the user and returns its ID.
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Get resolves a session ID to the owning user.
	Get(ctx context.Context, sessionID string) (uuid.UUID, error)
	// Delete invalidates a session. Deleting an unknown session is not
	// an error, so logout stays idempotent.
	Delete(ctx context.Context, sessionID string) error
}

// Config holds session store configuration shared by all backends.
type Config struct {
	TTL time.Duration
}

func newSessionID() string {
	return uuid.New().String()
}
