package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrInvalidEmail    = errors.New("value is not a valid email address")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrFullNameTooLong = errors.New("full name must be at most 255 characters")
	ErrUserNotFound    = errors.New("user not found")
)

// Ограничения на поля пользователя.
const (
	MaxEmailLength    = 255
	MaxFullNameLength = 255
	MaxPasswordBytes  = 72
)

// User представляет зарегистрированного пользователя. После регистрации не изменяется.
type User struct {
	ID             int64
	Email          string
	FullName       *string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
}
