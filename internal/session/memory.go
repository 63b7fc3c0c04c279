package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore returns an in-process session store. Suitable for
// development and tests; sessions die with the process.
func NewMemoryStore(cfg Config) Store {
	return &memoryStore{
		cache: gocache.New(cfg.TTL, 10*time.Minute),
	}
}

func (s *memoryStore) Create(_ context.Context, userID uuid.UUID) (string, error) {
	sessionID := newSessionID()
	s.cache.Set(sessionID, userID, gocache.DefaultExpiration)
	return sessionID, nil
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (uuid.UUID, error) {
	val, found := s.cache.Get(sessionID)
	if !found {
		return uuid.Nil, ErrNotFound
	}
	return val.(uuid.UUID), nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.cache.Delete(sessionID)
	return nil
}
