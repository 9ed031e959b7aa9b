// Package api определяет интерфейсы сценариев использования.
package api

import (
	"context"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
)

// RegisterInput содержит данные регистрации.
type RegisterInput struct {
	Email    string
	FullName *string
	Password string
}

// AuthUseCase определяет регистрацию и вход.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*services.AccessToken, error)
}

// UserUseCase определяет получение текущего пользователя по токену.
type UserUseCase interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}
