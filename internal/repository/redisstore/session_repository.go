package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"quicknotes-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(redisURL string) (*SessionRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &SessionRepository{client: client}, nil
}

func (r *SessionRepository) Save(session *store.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	return r.client.Set(context.Background(), keyPrefix+session.ID, data, ttl).Err()
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	data, err := r.client.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(sessionID string) error {
	return r.client.Del(context.Background(), keyPrefix+sessionID).Err()
}
