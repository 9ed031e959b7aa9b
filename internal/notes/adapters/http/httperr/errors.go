// Package httperr переводит ошибки домена в HTTP-ответы.
package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonotes/internal/notes/adapters/http/dto"
	"gonotes/internal/notes/adapters/http/middleware"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/pkg/logger"
)

// Ошибки разбора запроса.
var (
	ErrMalformedBody      = errors.New("malformed request body")
	ErrMissingCredentials = errors.New("username and password are required")
)

// Тексты ответов.
const (
	DetailInternal         = "Internal Server Error"
	DetailNotFound         = "Not Found"
	DetailNoteNotFound     = "Note not found"
	DetailBadCredentials   = "Incorrect username or password"
	DetailBadToken         = "Could not validate credentials"
	DetailInactiveUser     = "Inactive user"
	DetailEmailRegistered  = "Email already registered"
	HeaderWWWAuthenticate  = "WWW-Authenticate"
	authenticateChallenge  = "Bearer"
	msgUnhandledError      = "unhandled error"
	msgFailedWriteResponse = "failed to write error response"
)

var validationErrors = []error{
	entities.ErrInvalidEmail,
	entities.ErrEmptyPassword,
	entities.ErrPasswordTooLong,
	entities.ErrFullNameTooLong,
	entities.ErrEmptyTitle,
	entities.ErrTitleTooLong,
	entities.ErrInvalidNoteID,
	ErrMalformedBody,
	ErrMissingCredentials,
}

// Resolve возвращает HTTP статус и текст ответа для ошибки.
func Resolve(err error) (int, string) {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return fiber.StatusUnprocessableEntity, target.Error()
		}
	}

	switch {
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, DetailEmailRegistered
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, DetailBadCredentials
	case errors.Is(err, services.ErrInactiveUser):
		return fiber.StatusUnauthorized, DetailInactiveUser
	case errors.Is(err, services.ErrInvalidJWTToken), errors.Is(err, services.ErrExpiredJWTToken):
		return fiber.StatusUnauthorized, DetailBadToken
	case errors.Is(err, entities.ErrNoteNotFound):
		return fiber.StatusNotFound, DetailNoteNotFound
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return fe.Code, fe.Message
	}

	return fiber.StatusInternalServerError, DetailInternal
}

// ErrorHandler - обработчик ошибок fiber, единая точка преобразования ошибок в ответы.
func ErrorHandler(c fiber.Ctx, err error) error {
	status, detail := Resolve(err)

	requestCtx := middleware.RequestContext(c)
	if status >= fiber.StatusInternalServerError {
		logger.Log(requestCtx).Error(requestCtx, msgUnhandledError, zap.Error(err))
	}

	if status == fiber.StatusUnauthorized {
		c.Set(HeaderWWWAuthenticate, authenticateChallenge)
	}

	if writeErr := c.Status(status).JSON(dto.ErrorResponse{Detail: detail}); writeErr != nil {
		logger.Log(requestCtx).Error(requestCtx, msgFailedWriteResponse, zap.Error(writeErr))
		return writeErr
	}
	return nil
}

// NotFound отвечает 404 на неизвестные маршруты.
func NotFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Detail: DetailNotFound})
}
