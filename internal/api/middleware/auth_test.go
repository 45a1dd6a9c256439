package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/flowforge/internal/utils"
)

func testApp(cfg AuthConfig) *fiber.App {
	app := fiber.New()
	app.Use(AuthMiddleware(cfg))
	handler := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/resource", handler)
	app.Post("/resource", handler)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	authenticator := utils.NewJwtAuthenticator("https://auth.example.com/.well-known/jwks.json")

	t.Run("SkipReadOnlyAllowsGet", func(t *testing.T) {
		app := testApp(AuthConfig{JWTAuthenticator: authenticator, SkipReadOnly: true})

		resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("PostWithoutTokenRejected", func(t *testing.T) {
		app := testApp(AuthConfig{JWTAuthenticator: authenticator, SkipReadOnly: true})

		resp, err := app.Test(httptest.NewRequest("POST", "/resource", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("MalformedAuthorizationHeader", func(t *testing.T) {
		app := testApp(AuthConfig{JWTAuthenticator: authenticator, SkipReadOnly: true})

		req := httptest.NewRequest("POST", "/resource", nil)
		req.Header.Set("Authorization", "Token abc123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("InvalidTokenRejected", func(t *testing.T) {
		app := testApp(AuthConfig{JWTAuthenticator: authenticator, SkipReadOnly: true})

		req := httptest.NewRequest("POST", "/resource", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		resp, err := app.Test(req, 15000)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("GetGuardedWithoutSkip", func(t *testing.T) {
		app := testApp(AuthConfig{JWTAuthenticator: authenticator})

		resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
