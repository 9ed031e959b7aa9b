// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "gonotes/pkg/config"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	serviceName         = "notes"
	LogConfigLoaded     = "notes configuration loaded"
	LogDefaultJWTSecret = "default JWT secret is in use, set NOTES_JWT_SECRET_KEY"
	ErrFailedLoadConfig = "failed to load configuration"
)

// Ошибки конфигурации.
var (
	ErrDefaultSecretInProduction = errors.New("default JWT secret is not allowed in production mode")
	ErrUnknownStorageDriver      = errors.New("unknown storage driver")
)

// EnvFiles перечисляет .env файлы, которые подгружаются перед чтением окружения.
var EnvFiles = []string{".env"}

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Storage  StorageConfig  `yaml:"storage"`
	JWT      JWTConfig      `yaml:"jwt"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
	Redis    RedisConfig    `yaml:"redis"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Load загружает конфигурацию из переменных окружения и .env файлов.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName, EnvFiles...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.CheckSecret(ctx); err != nil {
		return nil, err
	}
	if d := cfg.Storage.Driver; d != StorageDriverPostgres && d != StorageDriverMemory {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, d)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.Int("postgres_min_conn", cfg.Postgres.MinConn),
		zap.Int("postgres_max_conn", cfg.Postgres.MaxConn),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("access_token_ttl", cfg.JWT.AccessTokenTTL),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Strings("cors_allow_origins", cfg.CORS.AllowOrigins),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}

// CheckSecret запрещает секрет по умолчанию в production и предупреждает о нём в development.
func (c *Config) CheckSecret(ctx context.Context) error {
	if c.JWT.SecretKey != DefaultJWTSecret {
		return nil
	}
	if c.Logging.GetEnvironment() == logger.Production {
		logger.Log(ctx).Error(ctx, ErrDefaultSecretInProduction.Error())
		return ErrDefaultSecretInProduction
	}
	logger.Log(ctx).Warn(ctx, LogDefaultJWTSecret)
	return nil
}
