package app

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"gonotes/internal/notes/domain/entities"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if email == "" || len(email) > entities.MaxEmailLength {
		return entities.ErrInvalidEmail
	}
	if !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}

// Пароль проверяется только на пустоту и предел bcrypt в 72 байта.
func validatePassword(password string) error {
	if password == "" {
		return entities.ErrEmptyPassword
	}
	if len(password) > entities.MaxPasswordBytes {
		return entities.ErrPasswordTooLong
	}
	return nil
}

func validateFullName(fullName *string) error {
	if fullName != nil && utf8.RuneCountInString(*fullName) > entities.MaxFullNameLength {
		return entities.ErrFullNameTooLong
	}
	return nil
}

// normalizeTitle обрезает пробелы и проверяет длину заголовка в символах.
func normalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", entities.ErrEmptyTitle
	}
	if utf8.RuneCountInString(trimmed) > entities.MaxTitleLength {
		return "", entities.ErrTitleTooLong
	}
	return trimmed, nil
}
