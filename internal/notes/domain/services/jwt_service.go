package services

import (
	"errors"
	"time"
)

// JWTErrors содержит ошибки, связанные с JWT токенами.
var (
	ErrInvalidJWTToken    = errors.New("could not validate credentials")
	ErrExpiredJWTToken    = errors.New("token has expired")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// JWTClaims определяет содержимое токена доступа.
type JWTClaims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}
