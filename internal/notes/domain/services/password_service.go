package services

import "errors"

// PasswordErrors содержит ошибки, связанные с паролями.
var (
	ErrHashingFailed = errors.New("failed to hash password")
)
