package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"affirm/internal/config"
	"affirm/internal/logging"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	app, err := NewApp(cfg, logger, AppOptions{})
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}

	// --- Event consumer ---
	if app.MQ != nil {
		handler := func(msg amqp.Delivery) error {
			logger.Info("Received domain event",
				zap.String("routing_key", msg.RoutingKey),
				zap.ByteString("body", msg.Body))
			return nil
		}
		if err := app.MQ.ConsumeEvents(handler); err != nil {
			logger.Warn("Failed to start RabbitMQ consumer", zap.Error(err))
		}
	}

	// --- Start HTTP server ---
	logger.Info("Starting server",
		zap.String("port", cfg.AppPort),
		zap.String("db_driver", cfg.DBDriver))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Fiber.Listen(cfg.AppPort); err != nil {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	if err := app.Close(); err != nil {
		logger.Warn("Error during shutdown", zap.Error(err))
	}
	logger.Info("Server gracefully stopped")
}
