package api

import (
	"context"

	"gonotes/internal/notes/domain/entities"
)

// NoteUseCase определяет операции над заметками владельца.
type NoteUseCase interface {
	CreateNote(ctx context.Context, ownerID int64, draft entities.NoteDraft) (*entities.Note, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (*entities.Note, error)
	ListNotes(ctx context.Context, ownerID int64) ([]*entities.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID int64, patch entities.NotePatch) (*entities.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}
