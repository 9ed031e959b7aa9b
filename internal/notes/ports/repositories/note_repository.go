package repositories

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteRepository определяет операции хранилища заметок. Все методы фильтруют по владельцу.
type NoteRepository interface {
	Create(ctx context.Context, ownerID int64, draft entities.NoteDraft) (*entities.Note, error)
	GetByID(ctx context.Context, ownerID, noteID int64) (*entities.Note, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Note, error)
	Update(ctx context.Context, ownerID, noteID int64, patch entities.NotePatch) (*entities.Note, error)
	Delete(ctx context.Context, ownerID, noteID int64) error
}
