package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"quicknotes-be/internal/dto"
	"quicknotes-be/internal/entity"
	"quicknotes-be/internal/pkg/serverutils"
	"quicknotes-be/internal/repository/contract"
	"quicknotes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repository fakes mirroring the documented storage semantics:
// owner-scoped reads, case-insensitive substring search, updated-desc order.

type fakeNoteRepo struct {
	notes map[uuid.UUID]entity.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]entity.Note)}
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	r.notes[note.Id] = *note
	return nil
}

func (r *fakeNoteRepo) UpdateOwned(_ context.Context, note *entity.Note) (bool, error) {
	existing, ok := r.notes[note.Id]
	if !ok || existing.UserId != note.UserId {
		return false, nil
	}
	existing.Title = note.Title
	existing.Content = note.Content
	existing.UpdatedAt = time.Now()
	r.notes[note.Id] = existing
	note.UpdatedAt = existing.UpdatedAt
	return true, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) FindOwned(_ context.Context, id, ownerId uuid.UUID) (*entity.Note, error) {
	n, ok := r.notes[id]
	if !ok || n.UserId != ownerId {
		return nil, nil
	}
	copy := n
	return &copy, nil
}

func (r *fakeNoteRepo) ListOwned(_ context.Context, ownerId uuid.UUID, search string) ([]*entity.Note, error) {
	var out []*entity.Note
	term := strings.ToLower(search)
	for _, n := range r.notes {
		if n.UserId != ownerId {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(n.Title), term) &&
			!strings.Contains(strings.ToLower(n.Content), term) {
			continue
		}
		copy := n
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *fakeNoteRepo) Count(context.Context) (int64, error) {
	return int64(len(r.notes)), nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.Id] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copy := u
	return &copy, nil
}

func (r *fakeUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeUow struct {
	notes *fakeNoteRepo
	users *fakeUserRepo
}

func (u *fakeUow) Begin(context.Context) error { return nil }
func (u *fakeUow) Commit() error               { return nil }
func (u *fakeUow) Rollback() error             { return nil }
func (u *fakeUow) UserRepository() contract.UserRepository {
	return u.users
}
func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return u.notes
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newNoteServiceUnderTest() (INoteService, *fakeNoteRepo) {
	notes := newFakeNoteRepo()
	factory := &fakeFactory{uow: &fakeUow{notes: notes, users: newFakeUserRepo()}}
	return NewNoteService(factory, nil, nopLogger{}), notes
}

func str(s string) *string { return &s }

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestNoteServiceCreateAndShow(t *testing.T) {
	svc, _ := newNoteServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Title: "Shopping", Content: "milk, eggs"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := svc.Show(ctx, owner, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", got.Title)
	assert.Equal(t, "milk, eggs", got.Content)
}

func TestNoteServiceOwnershipConflation(t *testing.T) {
	svc, _ := newNoteServiceUnderTest()
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(ctx, alice, &dto.CreateNoteRequest{Title: "private", Content: "secret"})
	require.NoError(t, err)

	// Bob must see 404, never 403, on every id-targeting operation.
	_, err = svc.Show(ctx, bob, created.Id)
	requireNotFound(t, err)

	_, err = svc.Update(ctx, bob, created.Id, &dto.UpdateNoteRequest{Title: str("stolen")})
	requireNotFound(t, err)

	err = svc.Delete(ctx, bob, created.Id)
	requireNotFound(t, err)

	// Alice still sees her note untouched.
	got, err := svc.Show(ctx, alice, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
}

func TestNoteServicePartialUpdate(t *testing.T) {
	svc, _ := newNoteServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.Id, &dto.UpdateNoteRequest{Title: str("t2")})
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "c", updated.Content)

	updated, err = svc.Update(ctx, owner, created.Id, &dto.UpdateNoteRequest{Content: str("c2")})
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "c2", updated.Content)
}

func TestNoteServiceDeleteTwice(t *testing.T) {
	svc, _ := newNoteServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, created.Id))
	requireNotFound(t, svc.Delete(ctx, owner, created.Id))
}

func TestNoteServiceListSearchAndOrder(t *testing.T) {
	svc, repo := newNoteServiceUnderTest()
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	base := time.Now()
	seed := []entity.Note{
		{Id: uuid.New(), UserId: owner, Title: "foo one", Content: "x", UpdatedAt: base.Add(1 * time.Minute)},
		{Id: uuid.New(), UserId: owner, Title: "other", Content: "has foo inside", UpdatedAt: base.Add(3 * time.Minute)},
		{Id: uuid.New(), UserId: owner, Title: "no match", Content: "x", UpdatedAt: base.Add(2 * time.Minute)},
		{Id: uuid.New(), UserId: other, Title: "foo foreign", Content: "x", UpdatedAt: base.Add(4 * time.Minute)},
	}
	for _, n := range seed {
		repo.notes[n.Id] = n
	}

	res, err := svc.List(ctx, owner, "foo")
	require.NoError(t, err)
	require.Len(t, res, 2)
	// Descending updated order among matches; foreign notes excluded.
	assert.Equal(t, "other", res[0].Title)
	assert.Equal(t, "foo one", res[1].Title)

	all, err := svc.List(ctx, owner, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNoteServiceListEmptyIsNotNil(t *testing.T) {
	svc, _ := newNoteServiceUnderTest()

	res, err := svc.List(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}
