// Package repositories определяет интерфейсы хранилищ.
package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// UserRepository определяет операции хранилища пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id int64) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
