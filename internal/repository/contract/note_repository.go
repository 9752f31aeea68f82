package contract

import (
	"context"

	"quicknotes-be/internal/entity"

	"github.com/google/uuid"
)

// NoteRepository is the owner-scoped storage adapter for notes. Reads never
// return another user's note; FindOwned yields (nil, nil) for both a missing
// note and a foreign one.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error

	// UpdateOwned persists title/content/updated_at in a single statement
	// scoped by (id, owner). Returns false when no row matched, which covers
	// a note deleted between the caller's lookup and the update.
	UpdateOwned(ctx context.Context, note *entity.Note) (bool, error)

	// Delete removes the row permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	FindOwned(ctx context.Context, id, ownerId uuid.UUID) (*entity.Note, error)

	// ListOwned returns the owner's notes ordered by updated_at descending.
	// A non-empty search term restricts to notes whose title or content
	// contains it (case-insensitive).
	ListOwned(ctx context.Context, ownerId uuid.UUID, search string) ([]*entity.Note, error)

	Count(ctx context.Context) (int64, error)
}
