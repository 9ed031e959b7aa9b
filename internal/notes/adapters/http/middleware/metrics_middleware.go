package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// RequestObserver принимает сведения о завершенном запросе.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// NewMetricsMiddleware учитывает запросы по шаблону маршрута.
func NewMetricsMiddleware(observer RequestObserver) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		observer.ObserveRequest(c.Method(), route, c.Response().StatusCode(), time.Since(start))
		return err
	}
}
