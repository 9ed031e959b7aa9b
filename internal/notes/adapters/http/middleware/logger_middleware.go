package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// NewLoggerMiddleware логирует запросы. Ошибки цепочки передаются в ErrorHandler
// приложения здесь, чтобы в лог и метрики попал итоговый статус ответа.
func NewLoggerMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		requestCtx := RequestContext(c)
		log := logger.Log(requestCtx).With(
			zap.String("method", c.Method()),
			zap.String("ip", c.IP()),
		)

		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				log.Error(requestCtx, "failed to write error response", zap.Error(err))
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if chainErr != nil {
			fields = append(fields, zap.NamedError("chain_error", chainErr))
		}

		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			log.Error(requestCtx, "request failed", fields...)
		} else {
			log.Info(requestCtx, "request completed", fields...)
		}
		return nil
	}
}
