package service

import (
	"context"
	"testing"

	"quicknotes-be/internal/dto"
	"quicknotes-be/internal/pkg/mailer"
	"quicknotes-be/internal/pkg/serverutils"
	"quicknotes-be/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthServiceUnderTest(sessionStrategy bool) (IAuthService, *fakeUserRepo, *memory.SessionRepository) {
	users := newFakeUserRepo()
	sessions := memory.NewSessionRepository()
	factory := &fakeFactory{uow: &fakeUow{notes: newFakeNoteRepo(), users: users}}
	svc := NewAuthService(factory, mailer.NoopEmailService{}, nil, sessions, testSecret, sessionStrategy, nopLogger{})
	return svc, users, sessions
}

func TestAuthServiceRegister(t *testing.T) {
	svc, users, _ := newAuthServiceUnderTest(false)
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "Password1",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, "Alice", res.User.Name)
	assert.NotEqual(t, uuid.Nil, res.User.Id)

	// The stored hash verifies, and the raw password is never persisted.
	stored, err := users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Password1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Password1")))
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthServiceUnderTest(false)
	ctx := context.Background()

	req := &dto.RegisterRequest{Email: "dup@example.com", Password: "Password1"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _, _ := newAuthServiceUnderTest(false)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &dto.RegisterRequest{Email: "bob@example.com", Password: "Password1"})
	require.NoError(t, err)

	res, sessionId, err := svc.Login(ctx, &dto.LoginRequest{Email: "bob@example.com", Password: "Password1"})
	require.NoError(t, err)
	assert.Empty(t, sessionId) // jwt strategy mints no server session

	token, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, reg.User.Id.String(), claims["user_id"])
}

func TestAuthServiceLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthServiceUnderTest(false)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "eve@example.com", Password: "Password1"})
	require.NoError(t, err)

	assertUnauthorized := func(err error) {
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Status)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	}

	// Unknown email and wrong password yield the identical failure.
	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "Password1"})
	assertUnauthorized(err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "eve@example.com", Password: "Wrong1pass"})
	assertUnauthorized(err)
}

func TestAuthServiceSessionStrategy(t *testing.T) {
	svc, _, sessions := newAuthServiceUnderTest(true)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &dto.RegisterRequest{Email: "sess@example.com", Password: "Password1"})
	require.NoError(t, err)

	_, sessionId, err := svc.Login(ctx, &dto.LoginRequest{Email: "sess@example.com", Password: "Password1"})
	require.NoError(t, err)
	require.NotEmpty(t, sessionId)

	session, found := sessions.Get(sessionId)
	require.True(t, found)
	assert.Equal(t, reg.User.Id, session.UserID)
	assert.False(t, session.Expired())

	require.NoError(t, svc.Logout(ctx, sessionId))
	_, found = sessions.Get(sessionId)
	assert.False(t, found)
}
