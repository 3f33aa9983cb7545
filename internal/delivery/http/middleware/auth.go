package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"silverwork/internal/pkg/token"
)

const (
	LocalActorID   = "actor_id"
	LocalActorRole = "actor_role"
)

// OptionalAuthMiddleware attaches the session actor to the request when a
// valid bearer token is present. It never rejects a request; the public
// surface is unauthenticated.
type OptionalAuthMiddleware struct {
	tokens token.Service
}

func NewOptionalAuthMiddleware(tokens token.Service) *OptionalAuthMiddleware {
	return &OptionalAuthMiddleware{tokens: tokens}
}

func (m *OptionalAuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if tok, ok := bearerToken(c.Get("Authorization")); ok && m.tokens != nil {
			if claims, err := m.tokens.Validate(tok); err == nil {
				c.Locals(LocalActorID, claims.AccountID)
				c.Locals(LocalActorRole, claims.Role)
			}
		}
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
