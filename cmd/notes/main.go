// Package main реализует точку входа HTTP сервиса заметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/cache"
	httpadapter "gonotes/internal/notes/adapters/http"
	"gonotes/internal/notes/adapters/http/health"
	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/adapters/postgres"
	"gonotes/internal/notes/adapters/services"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/config"
	"gonotes/internal/notes/db"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/db/redis"
	"gonotes/pkg/logger"
	"gonotes/pkg/metrics"
	"gonotes/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "failed to connect to redis"
	ErrServeHTTP            = "HTTP server stopped with error"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogMemoryStorage       = "using in-memory storage, data is lost on restart"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogStartingHTTP        = "starting HTTP server"
)

const metricsNamespace = "gonotes"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		var hooks []shutdown.Hook
		pingers := make(map[string]health.Pinger)

		log.Info(ctx, LogInitRepo, zap.String("driver", cfg.Storage.Driver))
		var (
			userRepo repositories.UserRepository
			noteRepo repositories.NoteRepository
		)
		if cfg.Storage.UseMemory() {
			log.Warn(ctx, LogMemoryStorage)
			store := memory.NewStore()
			userRepo, noteRepo = store.Users(), store.Notes()
		} else {
			database, err := db.New(ctx, &cfg.Postgres)
			if err != nil {
				log.Error(ctx, ErrInitDB, zap.Error(err))
				exitCode = 1
				return
			}
			hooks = append(hooks, func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			})
			pingers["postgres"] = database

			repoFactory := postgres.NewRepositoryFactory(database.Pool())
			userRepo, noteRepo = repoFactory.UserRepository(), repoFactory.NoteRepository()
		}

		if cfg.Redis.Enabled {
			redisClient, err := redis.NewClient(ctx, cfg.Redis.ClientConfig())
			if err != nil {
				log.Error(ctx, ErrInitRedis, zap.Error(err))
				shutdown.Run(ctx, cfg.Shutdown.GetTimeout(), hooks...)
				exitCode = 1
				return
			}
			hooks = append(hooks, func(ctx context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return redisClient.Close()
			})
			pingers["redis"] = redisClient

			userRepo = cache.NewUserRepository(userRepo,
				cache.NewRedisCache(redisClient, cfg.Redis.UserTTL), cfg.Redis.UserTTL)
		}

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.BCryptCost)

		log.Info(ctx, LogInitUseCases)
		authUseCase := app.NewAuthUseCase(userRepo, serviceFactory.PasswordService(),
			serviceFactory.TokenService(), cfg.JWT.AccessTokenTTL)
		userUseCase := app.NewUserUseCase(userRepo, serviceFactory.TokenService())
		noteUseCase := app.NewNoteUseCase(noteRepo)

		server := httpadapter.NewApp(httpadapter.ServerConfig{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})
		httpadapter.SetupRouter(server, httpadapter.Deps{
			Logger:       log,
			Auth:         authUseCase,
			Users:        userUseCase,
			Notes:        noteUseCase,
			Metrics:      metrics.NewHTTP(metricsNamespace),
			Pingers:      pingers,
			AllowOrigins: cfg.CORS.AllowOrigins,
		})

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		serveCtx, cancelServe := context.WithCancel(ctx)
		defer cancelServe()

		serveErr := make(chan error, 1)
		go func() {
			log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				serveErr <- err
				cancelServe()
			}
		}()

		stopHTTP := func(ctx context.Context) error {
			log.Info(ctx, LogStoppingHTTP)
			return server.ShutdownWithContext(ctx)
		}

		// Хранилища закрываются только после того, как HTTP сервер дождался активных запросов.
		shutdown.Wait(serveCtx, cfg.Shutdown.GetTimeout(),
			shutdown.Sequence(stopHTTP, shutdown.Sequence(hooks...)))

		select {
		case err := <-serveErr:
			log.Error(ctx, ErrServeHTTP, zap.Error(err))
			exitCode = 1
		default:
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
