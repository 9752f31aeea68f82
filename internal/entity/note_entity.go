package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note belongs to exactly one user; UserId is set at creation and never changes.
type Note struct {
	Id        uuid.UUID
	Title     string
	Content   string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
