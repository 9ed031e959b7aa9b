// Package entities содержит сущности домена сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrTitleTooLong  = errors.New("title must be at most 200 characters")
	ErrInvalidNoteID = errors.New("note ID must be a positive integer")
)

// MaxTitleLength - максимальная длина заголовка в символах.
const MaxTitleLength = 200

// Note представляет заметку, принадлежащую одному пользователю.
type Note struct {
	ID        int64
	OwnerID   int64
	Title     string
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteDraft содержит поля новой заметки.
type NoteDraft struct {
	Title   string
	Content *string
}

// NotePatch описывает частичное обновление: nil поле не меняется.
type NotePatch struct {
	Title   *string
	Content *string
}

// IsEmpty сообщает, что обновлять нечего.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}
