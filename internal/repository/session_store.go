package repository

import (
	"context"
	"errors"
	"time"

	drepo "StockScope/internal/domain/repository"
	"StockScope/pkg/cache"
)

// CacheSessionStore resolves bearer tokens to user ids via the cache
// backend (redis in production, memory in tests). Tokens are opaque here;
// issuing and revoking them belongs to the identity collaborator.
type CacheSessionStore struct {
	cache cache.Service
}

// NewCacheSessionStore creates a session store.
func NewCacheSessionStore(c cache.Service) *CacheSessionStore {
	return &CacheSessionStore{cache: c}
}

func (s *CacheSessionStore) UserForToken(ctx context.Context, token string) (string, error) {
	var userID string
	err := s.cache.Get(ctx, "session:"+token, &userID)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", drepo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *CacheSessionStore) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.cache.Set(ctx, "session:"+token, userID, ttl)
}

var _ drepo.SessionStore = (*CacheSessionStore)(nil)
