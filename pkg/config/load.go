// Package config предоставляет общую загрузку конфигурации из переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

const (
	msgLoadingEnvFile  = "loading env file"
	msgEnvFileSkipped  = "env file not found, skipped"
	msgLoadingConfig   = "loading configuration"
	msgConfigLoaded    = "configuration loaded successfully"
	errLoadEnvFile     = "failed to load env file"
	errReadEnvironment = "failed to read environment"

	attrService = "service"
	attrPath    = "path"
)

// LoadEnvFiles подгружает переменные из .env файлов в окружение процесса.
// Уже заданные переменные не перезаписываются, отсутствующие файлы пропускаются.
func LoadEnvFiles(ctx context.Context, paths ...string) error {
	log := logger.Log(ctx)

	for _, path := range paths {
		log.Debug(ctx, msgLoadingEnvFile, zap.String(attrPath, path))

		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug(ctx, msgEnvFileSkipped, zap.String(attrPath, path))
				continue
			}
			return fmt.Errorf("%s %s: %w", errLoadEnvFile, path, err)
		}
	}

	return nil
}

// Load заполняет структуру T из окружения по тегам env/env-default.
func Load[T any](ctx context.Context, serviceName string, envFiles ...string) (*T, error) {
	log := logger.Log(ctx)

	if err := LoadEnvFiles(ctx, envFiles...); err != nil {
		log.Error(ctx, errLoadEnvFile, zap.String(attrService, serviceName), zap.Error(err))
		return nil, err
	}

	log.Info(ctx, msgLoadingConfig, zap.String(attrService, serviceName))

	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, errReadEnvironment, zap.String(attrService, serviceName), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errReadEnvironment, err)
	}

	log.Info(ctx, msgConfigLoaded, zap.String(attrService, serviceName))
	return &cfg, nil
}
