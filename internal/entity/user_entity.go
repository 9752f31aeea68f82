package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	Name         string // display name, may be empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
