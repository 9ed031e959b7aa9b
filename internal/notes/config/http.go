package config

import (
	"fmt"
	"time"
)

// HTTPConfig конфигурация HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"NOTES_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"NOTES_HTTP_PORT" env-default:"8000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"NOTES_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"NOTES_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	BodyLimit    int           `yaml:"body_limit" env:"NOTES_HTTP_BODY_LIMIT" env-default:"1048576"`
}

// GetAddress возвращает адрес для HTTP сервера.
func (h *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// CORSConfig содержит список разрешённых источников.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins" env:"NOTES_CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}
