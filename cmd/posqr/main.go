package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/posqr/internal"
)

func main() {
	//decimals at json as numbers
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	_ = godotenv.Load()

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync()

	if cfg.JWTSecret == "" || cfg.TerminalKey == "" {
		sugaredLogger.Fatal("JWT_SECRET and TERMINAL_KEY must be set")
	}

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	rdb := NewRedisClient(cfg.RedisAddress)
	defer rdb.Close()

	publisher := NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, sugaredLogger)
	defer publisher.Close()

	authority := NewAuthorityClient(sugaredLogger, cfg.AuthoritySystemAddress, cfg.RequestTimeout)
	registry := NewDisplayRegistry()
	presenter := NewPollingPresenter(authority, repository, registry, sugaredLogger, cfg.PollInterval, cfg.DisplayTimeout)
	locker := NewRedisLocker(rdb, cfg.LockTTL, sugaredLogger)

	service := NewService(repository, authority, presenter, registry, locker, publisher, cfg.JWTSecret, cfg.TerminalKey, sugaredLogger)
	handlers := NewHandlers(service, cfg.JWTSecret, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())
	handlers.Register(app)

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err = app.Shutdown(); err != nil {
		sugaredLogger.Errorf("Shutdown error: %s", err.Error())
	}
}
