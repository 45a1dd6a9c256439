package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/flowforge/internal/utils"
)

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	// JWTAuthenticator validates bearer tokens against a JWKS
	JWTAuthenticator *utils.JwtAuthenticator
	// SkipReadOnly lets GET/HEAD requests through without a token
	SkipReadOnly bool
}

// AuthMiddleware returns a Fiber middleware for Bearer token authentication
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.SkipReadOnly && (c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead) {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		var token string
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if token == "" {
			c.Set("WWW-Authenticate", `Bearer realm="flowforge"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid Bearer token",
			})
		}

		user, err := cfg.JWTAuthenticator.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals("user", user)
		return c.Next()
	}
}
