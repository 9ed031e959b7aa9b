// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import (
	"time"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
)

// RegisterRequest представляет тело запроса регистрации.
type RegisterRequest struct {
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Password string  `json:"password"`
}

// LoginRequest представляет форму входа. Поле username содержит email.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse представляет выданный токен доступа.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse представляет пользователя без хэша пароля.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse представляет тело ответа с ошибкой.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewUserResponse преобразует сущность пользователя в ответ.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// NewTokenResponse преобразует токен доступа в ответ.
func NewTokenResponse(token *services.AccessToken) TokenResponse {
	return TokenResponse{AccessToken: token.Token, TokenType: token.TokenType}
}
