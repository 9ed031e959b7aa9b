package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/api"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

const (
	errCtxValidatingNote = "validating note"
	errCtxCreatingNote   = "creating note"
	errCtxGettingNote    = "getting note"
	errCtxListingNotes   = "listing notes"
	errCtxUpdatingNote   = "updating note"
	errCtxDeletingNote   = "deleting note"
)

// NoteUseCaseImpl представляет собой бизнес-логику работы с заметками.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCaseImpl.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

func noteLog(ctx context.Context, method string, ownerID int64) *logger.Logger {
	return logger.Log(ctx).With(zap.String("method", method), zap.Int64("ownerID", ownerID))
}

func validateNoteID(noteID int64) error {
	if noteID <= 0 {
		return fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrInvalidNoteID)
	}
	return nil
}

// CreateNote создает заметку владельца.
func (uc *NoteUseCaseImpl) CreateNote(ctx context.Context, ownerID int64, draft entities.NoteDraft) (*entities.Note, error) {
	log := noteLog(ctx, "CreateNote", ownerID)

	title, err := normalizeTitle(draft.Title)
	if err != nil {
		log.Debug(ctx, "invalid note title", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}
	draft.Title = title

	note, err := uc.noteRepo.Create(ctx, ownerID, draft)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, "note created", zap.Int64("noteID", note.ID))
	return note, nil
}

// GetNote возвращает заметку владельца. Чужая заметка не отличается от отсутствующей.
func (uc *NoteUseCaseImpl) GetNote(ctx context.Context, ownerID, noteID int64) (*entities.Note, error) {
	if err := validateNoteID(noteID); err != nil {
		return nil, err
	}

	note, err := uc.noteRepo.GetByID(ctx, ownerID, noteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}
	return note, nil
}

// ListNotes возвращает заметки владельца, новые первыми.
func (uc *NoteUseCaseImpl) ListNotes(ctx context.Context, ownerID int64) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}
	return notes, nil
}

// UpdateNote меняет переданные поля заметки владельца.
func (uc *NoteUseCaseImpl) UpdateNote(
	ctx context.Context,
	ownerID, noteID int64,
	patch entities.NotePatch,
) (*entities.Note, error) {
	log := noteLog(ctx, "UpdateNote", ownerID)

	if err := validateNoteID(noteID); err != nil {
		return nil, err
	}
	if patch.Title != nil {
		title, err := normalizeTitle(*patch.Title)
		if err != nil {
			log.Debug(ctx, "invalid note title", zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
		}
		patch.Title = &title
	}

	if patch.IsEmpty() {
		log.Debug(ctx, "empty patch, note left unchanged", zap.Int64("noteID", noteID))
		note, err := uc.noteRepo.GetByID(ctx, ownerID, noteID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
		}
		return note, nil
	}

	note, err := uc.noteRepo.Update(ctx, ownerID, noteID, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, "note updated", zap.Int64("noteID", noteID))
	return note, nil
}

// DeleteNote удаляет заметку владельца.
func (uc *NoteUseCaseImpl) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	if err := validateNoteID(noteID); err != nil {
		return err
	}

	if err := uc.noteRepo.Delete(ctx, ownerID, noteID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	noteLog(ctx, "DeleteNote", ownerID).Info(ctx, "note deleted", zap.Int64("noteID", noteID))
	return nil
}
