package memory

import (
	"time"

	"quicknotes-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 24 hours, and which
	// purges expired items every 10 minutes
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	r.cache.Set(session.ID, session, ttl)
	return nil
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}
