// Package auth содержит HTTP-обработчики регистрации, входа и профиля.
package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/adapters/http/httperr"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerRegister = "handling register request"
	LogHandlerLogin    = "handling login request"
	LogHandlerMe       = "handling current user request"

	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler обработчик HTTP-запросов аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Register обрабатывает POST /auth/register.
func (h *Handler) Register(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return fmt.Errorf("%w: %w", httperr.ErrMalformedBody, err)
	}

	user, err := h.authUseCase.Register(requestCtx, api.RegisterInput{
		Email:    strings.TrimSpace(req.Email),
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user))
}

// Login обрабатывает POST /auth/login с формой {username, password}.
func (h *Handler) Login(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return fmt.Errorf("%w: %w", httperr.ErrMalformedBody, err)
	}
	if req.Username == "" || req.Password == "" {
		return httperr.ErrMissingCredentials
	}

	token, err := h.authUseCase.Login(requestCtx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewTokenResponse(token))
}

// Me обрабатывает GET /auth/me.
func (h *Handler) Me(c fiber.Ctx) error {
	requestCtx := middleware.RequestContext(c)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerMe, zap.String("handler", "Handler.Me"))

	user, ok := middleware.Principal(c)
	if !ok {
		return services.ErrInvalidJWTToken
	}

	return c.JSON(dto.NewUserResponse(user))
}
