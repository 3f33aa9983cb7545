package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"silverwork/internal/app"
	"silverwork/internal/config"
	"silverwork/internal/database/migration"
	"silverwork/internal/database/seeder"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()
	logger := container.Logger

	migrateCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	runner := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := runner.Run(migrateCtx, container.DB.SQLDB()); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	if cfg.App.SeedDemoData {
		seedRunner := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
		if err := seedRunner.Run(migrateCtx, container.DB); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
		logger.Info("demo data seeded")
	}

	application, err := app.Bootstrap(container)
	if err != nil {
		logger.Fatal("bootstrap failed", zap.Error(err))
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()
	logger.Info("server listening", zap.String("addr", addr), zap.String("app", cfg.App.AppName))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}
}
