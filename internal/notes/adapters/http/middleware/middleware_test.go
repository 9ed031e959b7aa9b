package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/adapters/http/httperr"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/pkg/logger"
)

type stubUsers struct {
	user *entities.User
	err  error
}

func (s stubUsers) Authenticate(context.Context, string) (*entities.User, error) {
	return s.user, s.err
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	log, err := logger.NewLogger(logger.Development, "error")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: httperr.ErrorHandler})
	app.Use(middleware.NewRequestContextMiddleware(log))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	return app
}

func TestRecoveryMiddleware(t *testing.T) {
	app := newApp(t)
	app.Get("/panic", func(fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, string(body))
}

func TestAuthMiddlewareStoresPrincipal(t *testing.T) {
	app := newApp(t)
	user := &entities.User{ID: 7, Email: "a@x.io", IsActive: true}
	app.Get("/me", func(c fiber.Ctx) error {
		principal, ok := middleware.Principal(c)
		if !ok {
			return services.ErrInvalidJWTToken
		}
		_, hasID := logger.GetRequestID(middleware.RequestContext(c))
		assert.True(t, hasID)
		return c.SendString(principal.Email)
	}, middleware.NewAuthMiddleware(stubUsers{user: user}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@x.io", string(body))
}

func TestAuthMiddlewareRejects(t *testing.T) {
	app := newApp(t)
	app.Get("/me", func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) },
		middleware.NewAuthMiddleware(stubUsers{err: services.ErrExpiredJWTToken}))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer expired")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestPrincipalMissing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		_, ok := middleware.Principal(c)
		assert.False(t, ok)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	app := newApp(t)
	app.Get("/", func(c fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"корректный идентификатор сохраняется", "req-123_abc.1", true},
		{"слишком длинный заменяется", strings.Repeat("a", middleware.MaxRequestIDLength+1), false},
		{"недопустимые символы заменяются", "id with spaces;x=1", false},
		{"отсутствующий генерируется", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.HeaderRequestID, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			got := resp.Header.Get(middleware.HeaderRequestID)
			require.NotEmpty(t, got)
			assert.LessOrEqual(t, len(got), middleware.MaxRequestIDLength)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}
