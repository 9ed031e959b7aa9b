package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"

	bearerScheme = "bearer"
)

// NewAuthMiddleware проверяет bearer токен и сохраняет пользователя запроса.
func NewAuthMiddleware(users api.UserUseCase) fiber.Handler {
	return func(c fiber.Ctx) error {
		requestCtx := RequestContext(c)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return fmt.Errorf("%s: %w", ErrorNoAuthHeader, services.ErrInvalidJWTToken)
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return fmt.Errorf("%s: %w", ErrorInvalidTokenFormat, services.ErrInvalidJWTToken)
		}

		user, err := users.Authenticate(requestCtx, token)
		if err != nil {
			return err
		}

		c.Locals(principalKey{}, user)
		userLog := logger.Log(requestCtx).With(zap.Int64("userID", user.ID))
		setRequestContext(c, logger.NewContext(requestCtx, userLog))

		return c.Next()
	}
}
