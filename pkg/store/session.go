package store

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side login session referenced by a cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionStore is implemented by the memory (go-cache) and redis backends.
type SessionStore interface {
	Save(session *Session) error
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string) error
}
