package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"silverwork/internal/config"
	"silverwork/internal/database"
	dbpostgres "silverwork/internal/database/postgres"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Logger *zap.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger, err := newLogger(cfg.App.Environment)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{Config: cfg, DB: db, Logger: logger}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
