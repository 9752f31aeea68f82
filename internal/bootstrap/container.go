package bootstrap

import (
	"log"

	"quicknotes-be/internal/config"
	"quicknotes-be/internal/controller"
	"quicknotes-be/internal/pkg/identity"
	"quicknotes-be/internal/pkg/logger"
	"quicknotes-be/internal/pkg/mailer"
	"quicknotes-be/internal/repository/memory"
	"quicknotes-be/internal/repository/redisstore"
	"quicknotes-be/internal/repository/unitofwork"
	"quicknotes-be/internal/service"
	"quicknotes-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const lifecycleEventsTopic = "lifecycle-events"

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	NoteController controller.INoteController

	// Request guard built from the configured identity strategy
	AuthGuard fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	} else {
		emailService = mailer.NoopEmailService{}
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub, lifecycleEventsTopic)
	consumerService := service.NewConsumerService(pubSub, lifecycleEventsTopic, sysLogger)

	// 3. Session store (only consulted under the "session" strategy, but the
	// login flow writes to it whenever that strategy is active)
	var sessions store.SessionStore
	if cfg.Auth.SessionStore == "redis" {
		redisSessions, err := redisstore.NewSessionRepository(cfg.Auth.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis session store: %v (falling back to memory)", err)
			sessions = memory.NewSessionRepository()
		} else {
			sessions = redisSessions
		}
	} else {
		sessions = memory.NewSessionRepository()
	}

	// 4. Identity strategy
	var resolver identity.Resolver
	sessionStrategy := cfg.Auth.Strategy == "session"
	if sessionStrategy {
		resolver = identity.NewSessionResolver(sessions, cfg.Auth.SessionCookie)
	} else {
		resolver = identity.NewJWTResolver(cfg.Auth.JWTSecret)
	}
	authGuard := identity.Middleware(resolver)

	// 5. Services
	authService := service.NewAuthService(
		uowFactory,
		emailService,
		publisherService,
		sessions,
		cfg.Auth.JWTSecret,
		sessionStrategy,
		sysLogger,
	)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	// 6. Controllers
	authController := controller.NewAuthController(authService, cfg.Auth.SessionCookie)
	noteController := controller.NewNoteController(noteService)

	return &Container{
		AuthController:  authController,
		NoteController:  noteController,
		AuthGuard:       authGuard,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
