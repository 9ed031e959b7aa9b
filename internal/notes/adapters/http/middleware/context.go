// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// MaxRequestIDLength ограничивает длину идентификатора, принятого от клиента.
const MaxRequestIDLength = 64

type requestContextKey struct{}

type principalKey struct{}

// RequestContext возвращает контекст запроса с логгером и request id.
func RequestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(requestContextKey{}).(context.Context); ok {
		return ctx
	}
	return c.Context()
}

func setRequestContext(c fiber.Ctx, ctx context.Context) {
	c.Locals(requestContextKey{}, ctx)
}

// Principal возвращает аутентифицированного пользователя запроса.
func Principal(c fiber.Ctx) (*entities.User, bool) {
	user, ok := c.Locals(principalKey{}).(*entities.User)
	return user, ok && user != nil
}

// NewRequestContextMiddleware присваивает запросу идентификатор и кладет логгер в контекст.
func NewRequestContextMiddleware(base *logger.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := logger.NewRequestIDContext(c.Context(), clientRequestID(c.Get(HeaderRequestID)))
		requestID, _ := logger.GetRequestID(ctx)

		ctx = logger.NewContext(ctx, base.With(zap.String("path", c.Path())))
		setRequestContext(c, ctx)
		c.Set(HeaderRequestID, requestID)

		return c.Next()
	}
}

// clientRequestID возвращает идентификатор клиента или "", если он длиннее
// MaxRequestIDLength или содержит что-то кроме букв, цифр, '-', '_' и '.'.
func clientRequestID(id string) string {
	if len(id) > MaxRequestIDLength {
		return ""
	}
	for i := 0; i < len(id); i++ {
		switch ch := id[i]; {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9',
			ch == '-', ch == '_', ch == '.':
		default:
			return ""
		}
	}
	return id
}
