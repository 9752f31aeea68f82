package identity

import (
	"quicknotes-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionResolver authenticates via a session-id cookie looked up in a
// server-side store. Expired sessions are treated the same as missing ones.
type SessionResolver struct {
	sessions   store.SessionStore
	cookieName string
}

func NewSessionResolver(sessions store.SessionStore, cookieName string) *SessionResolver {
	return &SessionResolver{
		sessions:   sessions,
		cookieName: cookieName,
	}
}

func (r *SessionResolver) Resolve(ctx *fiber.Ctx) (uuid.UUID, error) {
	sessionId := ctx.Cookies(r.cookieName)
	if sessionId == "" {
		return uuid.Nil, ErrNoIdentity
	}

	session, found := r.sessions.Get(sessionId)
	if !found || session.Expired() {
		return uuid.Nil, ErrNoIdentity
	}
	return session.UserID, nil
}
