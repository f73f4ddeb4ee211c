// Package main wires the HTTP server for the meeting tracking service.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	handlers_fiber "smt-backend/internal/transport/http/server/handlers-fiber"
	"smt-backend/internal/usecase"

	"smt-backend/config"
	"smt-backend/internal/repository"
	"smt-backend/internal/transport/http/middleware"
	"smt-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(ctx, cfg, log); err != nil {
		// Fatalw exits with status 1 after flushing the logger.
		log.Fatalw("service stopped", "error", err)
	}
}

// run serves until ctx is cancelled. It returns an error when the store
// cannot be started or the listener fails.
func run(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	repo, err := repository.New(ctx, "mongo", log, cfg)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	if err := repo.OnStart(ctx); err != nil {
		return fmt.Errorf("start repository: %w", err)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, repo, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(serv, h)

	listenErr := make(chan error, 1)
	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			listenErr <- err
		}
		stop()
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}

	select {
	case err := <-listenErr:
		return fmt.Errorf("listen %s: %w", cfg.ServerAddr(), err)
	default:
		return nil
	}
}
