package repository

import (
	"context"
	"time"

	"solemate/internal/storage"

	gocache "github.com/patrickmn/go-cache"
)

// MemorySessionRepo is the session store used when no redis address is
// configured. Sessions do not survive a restart.
type MemorySessionRepo struct {
	cache *gocache.Cache
}

func NewMemorySessionRepo(defaultTTL time.Duration) *MemorySessionRepo {
	return &MemorySessionRepo{
		cache: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (r *MemorySessionRepo) SaveSession(_ context.Context, sessionID string, userID int64, ttl time.Duration) error {
	r.cache.Set(sessionKey(sessionID), userID, ttl)
	return nil
}

func (r *MemorySessionRepo) UserID(_ context.Context, sessionID string) (int64, error) {
	val, ok := r.cache.Get(sessionKey(sessionID))
	if !ok {
		return 0, storage.ErrSessionNotFound
	}
	return val.(int64), nil
}

func (r *MemorySessionRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.cache.Delete(sessionKey(sessionID))
	return nil
}
