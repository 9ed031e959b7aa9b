// Package services содержит ошибки и модели доменных сервисов.
package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("incorrect username or password")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInactiveUser          = errors.New("inactive user")
	ErrTokenGenerationFailed = errors.New("failed to generate access token")
)

// TokenTypeBearer - тип выдаваемого токена.
const TokenTypeBearer = "bearer"

// AccessToken представляет выданный токен доступа.
type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}
