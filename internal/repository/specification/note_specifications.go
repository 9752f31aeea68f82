package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy scopes a query to a single owner. Every note read goes through
// this, so a foreign note and a missing note look identical to callers.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// TitleOrContentContains restricts notes to those whose title or content
// contains the term. ILIKE makes the match case-insensitive on Postgres;
// this is the documented search policy.
type TitleOrContentContains struct {
	Term string
}

func (s TitleOrContentContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
