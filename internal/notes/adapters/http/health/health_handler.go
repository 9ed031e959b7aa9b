// Package health содержит обработчик проверки готовности сервиса.
package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/pkg/logger"
)

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	pingTimeout = 2 * time.Second
)

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Response - тело ответа проверки.
type Response struct {
	Status string `json:"status"`
}

// Handler отвечает 200, если все зависимости доступны, иначе 503.
type Handler struct {
	pingers map[string]Pinger
}

// NewHandler создает обработчик. Ключ карты - имя зависимости для логов.
func NewHandler(pingers map[string]Pinger) *Handler {
	return &Handler{pingers: pingers}
}

// Check обрабатывает GET /health.
func (h *Handler) Check(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	ctx, cancel := context.WithTimeout(requestCtx, pingTimeout)
	defer cancel()

	for name, p := range h.pingers {
		if err := p.Ping(ctx); err != nil {
			logger.Log(requestCtx).Warn(requestCtx, "dependency unavailable",
				zap.String("dependency", name), zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(Response{Status: StatusUnavailable})
		}
	}

	return c.JSON(Response{Status: StatusOK})
}
