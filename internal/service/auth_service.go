package service

import (
	"context"
	"net/http"
	"time"

	"quicknotes-be/internal/dto"
	"quicknotes-be/internal/entity"
	"quicknotes-be/internal/pkg/logger"
	"quicknotes-be/internal/pkg/mailer"
	"quicknotes-be/internal/pkg/serverutils"
	"quicknotes-be/internal/repository/unitofwork"
	"quicknotes-be/pkg/events"
	"quicknotes-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenExpiry = time.Hour * 24
	sessionExpiry     = time.Hour * 24
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, string, error)
	Logout(ctx context.Context, sessionId string) error
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
	sessions         store.SessionStore
	jwtSecret        string
	sessionStrategy  bool
	log              logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
	sessions store.SessionStore,
	jwtSecret string,
	sessionStrategy bool,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
		sessions:         sessions,
		jwtSecret:        jwtSecret,
		sessionStrategy:  sessionStrategy,
		log:              log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflict("User already exists")
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Create User Entity
	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Save to DB inside a transaction. A concurrent registration with the
	// same email loses to the unique index, not to the check above.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.publisherService != nil {
		evt := events.BaseEvent{
			Type: events.UserRegistered,
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.publisherService.Publish(ctx, evt); err != nil {
			s.log.Warn("auth", "failed to publish event", map[string]interface{}{"error": err.Error()})
		}
	}

	// Welcome mail is best effort and must not delay the response.
	go func() {
		if err := s.emailService.SendWelcome(user.Email, user.Name); err != nil {
			s.log.Warn("auth", "failed to send welcome email", map[string]interface{}{"error": err.Error()})
		}
	}()

	return &dto.RegisterResponse{
		User: dto.UserPayload{
			Id:    user.Id,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

// Login returns the response plus the server session id ("" under the jwt
// strategy); the controller turns the session id into a cookie.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		// Uniform failure: unknown email and wrong password are identical.
		return nil, "", invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", invalidCredentials()
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, "", err
	}

	var sessionId string
	if s.sessionStrategy && s.sessions != nil {
		now := time.Now()
		session := &store.Session{
			ID:        uuid.New().String(),
			UserID:    user.Id,
			CreatedAt: now,
			ExpiresAt: now.Add(sessionExpiry),
		}
		if err := s.sessions.Save(session); err != nil {
			return nil, "", err
		}
		sessionId = session.ID
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User: dto.UserPayload{
			Id:    user.Id,
			Email: user.Email,
			Name:  user.Name,
		},
	}, sessionId, nil
}

func (s *authService) Logout(ctx context.Context, sessionId string) error {
	if sessionId == "" || s.sessions == nil {
		return nil
	}
	return s.sessions.Delete(sessionId)
}

func invalidCredentials() *serverutils.AppError {
	return &serverutils.AppError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
}
