package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

const (
	noteColumns     = "id, title, content, created_at, updated_at, owner_id"
	errBuildQuery   = "failed to build query"
	msgNoteNotFound = "note not found"
)

// NoteRepository реализует интерфейс repositories.NoteRepository для работы с Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый экземпляр репозитория заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
		&note.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Create сохраняет заметку владельца.
func (r *NoteRepository) Create(ctx context.Context, ownerID int64, draft entities.NoteDraft) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	query := `
        INSERT INTO notes (title, content, owner_id)
        VALUES ($1, $2, $3)
        RETURNING ` + noteColumns

	note, err := scanNote(r.pool.QueryRow(ctx, query, draft.Title, draft.Content, ownerID))
	if err != nil {
		log.Error(ctx, "error creating note", zap.Error(err))
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	log.Debug(ctx, "note created", zap.Int64("id", note.ID))
	return note, nil
}

// GetByID возвращает заметку, если она принадлежит владельцу.
func (r *NoteRepository) GetByID(ctx context.Context, ownerID, noteID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND owner_id = $2`

	note, err := scanNote(r.pool.QueryRow(ctx, query, noteID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgNoteNotFound, zap.Int64("id", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error getting note", zap.Error(err))
		return nil, fmt.Errorf("error querying note: %w", err)
	}

	return note, nil
}

// ListByOwner возвращает заметки владельца, новые первыми.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByOwner"))

	query, args, err := sq.Select(noteColumns).
		From("notes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildQuery, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error listing notes", zap.Error(err))
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "error scanning note", zap.Error(err))
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating notes", zap.Error(err))
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}

// Update меняет только переданные поля и обновляет updated_at одним запросом.
func (r *NoteRepository) Update(
	ctx context.Context,
	ownerID, noteID int64,
	patch entities.NotePatch,
) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))

	builder := sq.Update("notes")
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		builder = builder.Set("content", *patch.Content)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": noteID}).
		Where(sq.Eq{"owner_id": ownerID}).
		Suffix("RETURNING " + noteColumns).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errBuildQuery, err)
	}

	note, err := scanNote(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgNoteNotFound, zap.Int64("id", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error updating note", zap.Error(err))
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return note, nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, ownerID, noteID int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND owner_id = $2`, noteID, ownerID)
	if err != nil {
		log.Error(ctx, "error deleting note", zap.Error(err))
		return fmt.Errorf("error deleting note: %w", err)
	}

	if tag.RowsAffected() == 0 {
		log.Debug(ctx, msgNoteNotFound, zap.Int64("id", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}
