package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func setupGuard(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()

	authService := services.NewAuthService(repositories.NewMockUserRepository(), &config.Config{
		JWTSecret:  "test_jwt_secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	})

	app := fiber.New()
	app.Get("/protected", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": c.Locals("username"),
			"user_id":  c.Locals("user_id"),
		})
	})
	return app, authService
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	app, _ := setupGuard(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_MalformedHeader(t *testing.T) {
	app, authService := setupGuard(t)

	token, err := authService.IssueToken(&models.User{ID: 7, Username: "ada"})
	assert.NoError(t, err)

	for _, header := range []string{"Basic abc123", token, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q should be rejected", header)
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	app, _ := setupGuard(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_ValidTokenAttachesClaims(t *testing.T) {
	app, authService := setupGuard(t)

	token, err := authService.IssueToken(&models.User{ID: 7, Username: "ada"})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
