package main

import (
	"errors"
	"fmt"
	"time"

	"affirm/internal/composer"
	"affirm/internal/config"
	"affirm/internal/database"
	"affirm/internal/handlers"
	"affirm/internal/middleware"
	"affirm/internal/repositories"
	"affirm/internal/services"
	"affirm/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Application bundles the HTTP app with the resources it owns.
type Application struct {
	Fiber              *fiber.App
	AuthService        *services.AuthService
	AffirmationService *services.AffirmationService
	MQ                 *rabbitmq.Client

	db     *gorm.DB
	logger *zap.Logger
}

// AppOptions overrides pieces of the wiring, mainly for tests.
type AppOptions struct {
	// RandomSource replaces the composer's default random source.
	RandomSource composer.RandomSource
	// DisableAccessLog turns off the per-request logger middleware.
	DisableAccessLog bool
}

// NewApp opens the store, connects the optional event broker and wires
// repositories, services, handlers and routes.
func NewApp(cfg *config.Config, log *zap.Logger, opts AppOptions) (*Application, error) {
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		return nil, err
	}

	var (
		mqClient  *rabbitmq.Client
		publisher services.EventPublisher
	)
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: services.EventsExchange}, log)
		if err != nil {
			database.Close(db)
			return nil, err
		}
		publisher = mqClient
	} else {
		log.Info("RABBITMQ_URL not set, domain events disabled")
	}

	accountRepo := repositories.NewGORMAccountRepository(db)
	affirmationRepo := repositories.NewGORMAffirmationRepository(db)

	authService := services.NewAuthService(accountRepo, services.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
	}, publisher, log)
	affirmationService := services.NewAffirmationService(affirmationRepo, opts.RandomSource, publisher, log)

	validate := validator.New()
	authHandler := handlers.NewAuthHandler(authService, validate, log)
	affirmationHandler := handlers.NewAffirmationHandler(affirmationService, validate, log)

	app := fiber.New(fiber.Config{
		AppName: "Affirmation Generator API",
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(middleware.TraceID())
	if !opts.DisableAccessLog {
		app.Use(logger.New())
	}

	api := app.Group("/api")
	api.Get("/health", handleHealth)
	authHandler.RegisterRoutes(api, middleware.AuthRequired(authService, log))
	affirmationHandler.RegisterRoutes(api)

	return &Application{
		Fiber:              app,
		AuthService:        authService,
		AffirmationService: affirmationService,
		MQ:                 mqClient,
		db:                 db,
		logger:             log,
	}, nil
}

func handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "OK",
		"message": "Affirmation Generator API is running",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Close shuts down the HTTP app and releases the database and broker.
func (a *Application) Close() error {
	var errs []error
	if err := a.Fiber.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
	}
	if a.MQ != nil {
		if err := a.MQ.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := database.Close(a.db); err != nil {
		errs = append(errs, fmt.Errorf("database close: %w", err))
	}
	return errors.Join(errs...)
}
