// Package shutdown реализует корректное завершение приложения по SIGINT/SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

const (
	msgSignalReceived = "shutdown signal received"
	msgHookFailed     = "shutdown hook failed"
	msgTimeout        = "shutdown timeout exceeded"
)

// Hook - действие, выполняемое при завершении.
type Hook func(context.Context) error

// Sequence объединяет хуки в один, выполняемый по порядку.
// Следующий хук запускается после завершения предыдущего, даже если тот вернул ошибку.
func Sequence(hooks ...Hook) Hook {
	return func(ctx context.Context) error {
		var errs []error
		for _, hook := range hooks {
			if err := hook(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// Wait блокируется до SIGINT, SIGTERM или отмены ctx и затем выполняет хуки.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()
	logger.Log(ctx).Info(ctx, msgSignalReceived)

	Run(ctx, timeout, hooks...)
}

// Run параллельно выполняет хуки и ждет их не дольше timeout.
// Возвращает false, если время вышло.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) bool {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(hookCtx, msgHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-hookCtx.Done():
		log.Warn(ctx, msgTimeout, zap.Duration("timeout", timeout))
		return false
	}
}
