package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"quicknotes-be/internal/entity"
	"quicknotes-be/internal/repository/unitofwork"
	"quicknotes-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	ctx := context.Background()
	owner := &entity.User{
		Id:           uuid.New(),
		Email:        "integration-" + uuid.New().String() + "@example.com",
		PasswordHash: "not-a-real-hash",
		Name:         "Integration Owner",
	}
	stranger := &entity.User{
		Id:           uuid.New(),
		Email:        "integration-" + uuid.New().String() + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, owner))
	require.NoError(t, uow.UserRepository().Create(ctx, stranger))

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Owner Scoped Reads", func(t *testing.T) {
		note := &entity.Note{
			Id:      uuid.New(),
			Title:   "integration note",
			Content: "scoped read check",
			UserId:  owner.Id,
		}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))
		defer uow.NoteRepository().Delete(ctx, note.Id)

		found, err := uow.NoteRepository().FindOwned(ctx, note.Id, owner.Id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "integration note", found.Title)

		// The same id under a different owner reads as absent.
		foreign, err := uow.NoteRepository().FindOwned(ctx, note.Id, stranger.Id)
		require.NoError(t, err)
		assert.Nil(t, foreign)
	})

	t.Run("Owner Scoped Update", func(t *testing.T) {
		note := &entity.Note{
			Id:      uuid.New(),
			Title:   "before",
			Content: "body",
			UserId:  owner.Id,
		}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))
		defer uow.NoteRepository().Delete(ctx, note.Id)

		foreign := *note
		foreign.UserId = stranger.Id
		foreign.Title = "hijacked"
		updated, err := uow.NoteRepository().UpdateOwned(ctx, &foreign)
		require.NoError(t, err)
		assert.False(t, updated, "update scoped to another owner must match zero rows")

		note.Title = "after"
		updated, err = uow.NoteRepository().UpdateOwned(ctx, note)
		require.NoError(t, err)
		assert.True(t, updated)

		found, err := uow.NoteRepository().FindOwned(ctx, note.Id, owner.Id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "after", found.Title)
	})

	t.Run("List Order And Search", func(t *testing.T) {
		older := &entity.Note{Id: uuid.New(), Title: "grocery run", Content: "apples", UserId: owner.Id}
		require.NoError(t, uow.NoteRepository().Create(ctx, older))
		defer uow.NoteRepository().Delete(ctx, older.Id)

		time.Sleep(10 * time.Millisecond)

		newer := &entity.Note{Id: uuid.New(), Title: "meeting", Content: "agenda with GROCERY link", UserId: owner.Id}
		require.NoError(t, uow.NoteRepository().Create(ctx, newer))
		defer uow.NoteRepository().Delete(ctx, newer.Id)

		notes, err := uow.NoteRepository().ListOwned(ctx, owner.Id, "grocery")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, newer.Id, notes[0].Id, "most recently updated note comes first")
		assert.Equal(t, older.Id, notes[1].Id)

		none, err := uow.NoteRepository().ListOwned(ctx, stranger.Id, "grocery")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Transactional Create", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))
		defer txUow.Rollback()

		note := &entity.Note{
			Id:      uuid.New(),
			Title:   "tx note",
			Content: "committed inside a transaction",
			UserId:  owner.Id,
		}
		require.NoError(t, txUow.NoteRepository().Create(ctx, note))
		require.NoError(t, txUow.Commit())

		defer uow.NoteRepository().Delete(ctx, note.Id)
		found, err := uow.NoteRepository().FindOwned(ctx, note.Id, owner.Id)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}
