package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"silverwork/internal/database"
	"silverwork/internal/delivery/http/middleware"
	"silverwork/internal/delivery/http/routes"
	"silverwork/internal/pkg/token"
)

type App struct {
	Fiber *fiber.App
}

func New(db database.DB, tokens token.Service, logger *zap.Logger) *App {
	f := fiber.New(fiber.Config{})

	// Access log sits outside the error middleware so it observes the
	// status the client actually receives.
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.NewOptionalAuthMiddleware(tokens).Middleware())

	routes.Register(f, db, tokens, logger)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, error) {
	if c == nil {
		return nil, fmt.Errorf("nil container")
	}

	tokens := token.NewHMACService(c.Config.Token.Secret, c.Config.Token.ExpiresIn)
	return New(c.DB, tokens, c.Logger), nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
