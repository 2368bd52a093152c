package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/tempcheck/internal/api/http"
	"github.com/i474232898/tempcheck/internal/config"
	"github.com/i474232898/tempcheck/internal/scheduler"
	"github.com/i474232898/tempcheck/internal/session"
	"github.com/i474232898/tempcheck/internal/store"
)

func main() {
	// Load configuration (also reads an optional .env file).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// In-memory screen store with configured retention.
	memStore := store.NewMemoryStore(cfg.SessionMaxCount, cfg.SessionMaxIdle)

	// Service holding converter screens; results are recomputed per request.
	service := session.NewService(memStore)

	// Scheduler that periodically drops idle screens.
	sched := scheduler.New(cfg.PruneInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "tempcheck",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "tempcheck",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
