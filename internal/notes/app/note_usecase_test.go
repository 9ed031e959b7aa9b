package app_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/adapters/memory"
	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/entities"
)

func TestCreateNote(t *testing.T) {
	ctx := testContext(t)

	t.Run("Заголовок обрезается", func(t *testing.T) {
		repo := new(MockNoteRepository)
		repo.On("Create", mock.Anything, int64(1), entities.NoteDraft{Title: "Groceries", Content: ptr("milk")}).
			Return(&entities.Note{ID: 1, OwnerID: 1, Title: "Groceries"}, nil)

		note, err := app.NewNoteUseCase(repo).CreateNote(ctx, 1, entities.NoteDraft{Title: "  Groceries ", Content: ptr("milk")})
		require.NoError(t, err)
		assert.Equal(t, int64(1), note.ID)
		repo.AssertExpectations(t)
	})

	invalid := []struct {
		name  string
		title string
		want  error
	}{
		{"empty", "", entities.ErrEmptyTitle},
		{"blank", "   ", entities.ErrEmptyTitle},
		{"too long", strings.Repeat("ж", 201), entities.ErrTitleTooLong},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockNoteRepository)
			_, err := app.NewNoteUseCase(repo).CreateNote(ctx, 1, entities.NoteDraft{Title: tt.title})
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("200 символов допустимо", func(t *testing.T) {
		repo := new(MockNoteRepository)
		title := strings.Repeat("ж", 200)
		repo.On("Create", mock.Anything, int64(1), entities.NoteDraft{Title: title}).
			Return(&entities.Note{ID: 2, Title: title}, nil)

		_, err := app.NewNoteUseCase(repo).CreateNote(ctx, 1, entities.NoteDraft{Title: title})
		require.NoError(t, err)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := testContext(t)

	t.Run("Пустой заголовок отклоняется", func(t *testing.T) {
		repo := new(MockNoteRepository)
		_, err := app.NewNoteUseCase(repo).UpdateNote(ctx, 1, 10, entities.NotePatch{Title: ptr(" ")})
		assert.ErrorIs(t, err, entities.ErrEmptyTitle)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Только content", func(t *testing.T) {
		repo := new(MockNoteRepository)
		patch := entities.NotePatch{Content: ptr("new")}
		repo.On("Update", mock.Anything, int64(1), int64(10), patch).
			Return(&entities.Note{ID: 10, Title: "kept", Content: ptr("new")}, nil)

		note, err := app.NewNoteUseCase(repo).UpdateNote(ctx, 1, 10, patch)
		require.NoError(t, err)
		assert.Equal(t, "kept", note.Title)
	})

	t.Run("Пустое обновление не меняет заметку", func(t *testing.T) {
		repo := new(MockNoteRepository)
		stored := &entities.Note{ID: 10, OwnerID: 1, Title: "kept"}
		repo.On("GetByID", mock.Anything, int64(1), int64(10)).Return(stored, nil)

		note, err := app.NewNoteUseCase(repo).UpdateNote(ctx, 1, 10, entities.NotePatch{})
		require.NoError(t, err)
		assert.Same(t, stored, note)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Пустое обновление чужой заметки", func(t *testing.T) {
		repo := new(MockNoteRepository)
		repo.On("GetByID", mock.Anything, int64(2), int64(10)).Return(nil, entities.ErrNoteNotFound)

		_, err := app.NewNoteUseCase(repo).UpdateNote(ctx, 2, 10, entities.NotePatch{})
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})

	t.Run("Чужая заметка", func(t *testing.T) {
		repo := new(MockNoteRepository)
		repo.On("Update", mock.Anything, int64(2), int64(10), mock.Anything).Return(nil, entities.ErrNoteNotFound)

		_, err := app.NewNoteUseCase(repo).UpdateNote(ctx, 2, 10, entities.NotePatch{Title: ptr("x")})
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestInvalidNoteID(t *testing.T) {
	ctx := testContext(t)
	repo := new(MockNoteRepository)
	uc := app.NewNoteUseCase(repo)

	_, err := uc.GetNote(ctx, 1, 0)
	assert.ErrorIs(t, err, entities.ErrInvalidNoteID)
	_, err = uc.UpdateNote(ctx, 1, -1, entities.NotePatch{})
	assert.ErrorIs(t, err, entities.ErrInvalidNoteID)
	assert.ErrorIs(t, uc.DeleteNote(ctx, 1, 0), entities.ErrInvalidNoteID)

	repo.AssertExpectations(t)
}

// Свойства сценариев на хранилище в памяти.
func TestNoteScenarios(t *testing.T) {
	ctx := testContext(t)

	t.Run("чужая заметка не видна", func(t *testing.T) {
		uc := app.NewNoteUseCase(memory.NewStore().Notes())
		note, err := uc.CreateNote(ctx, 1, entities.NoteDraft{Title: "A's"})
		require.NoError(t, err)

		_, err = uc.GetNote(ctx, 2, note.ID)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		assert.ErrorIs(t, uc.DeleteNote(ctx, 2, note.ID), entities.ErrNoteNotFound)

		own, err := uc.GetNote(ctx, 1, note.ID)
		require.NoError(t, err)
		assert.Equal(t, "A's", own.Title)
	})

	t.Run("обновление content сохраняет title и сдвигает updated_at", func(t *testing.T) {
		uc := app.NewNoteUseCase(memory.NewStore().Notes())
		note, err := uc.CreateNote(ctx, 1, entities.NoteDraft{Title: "Title", Content: ptr("old")})
		require.NoError(t, err)

		updated, err := uc.UpdateNote(ctx, 1, note.ID, entities.NotePatch{Content: ptr("new")})
		require.NoError(t, err)
		assert.Equal(t, "Title", updated.Title)
		assert.Equal(t, "new", *updated.Content)
		assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))
		assert.Equal(t, note.CreatedAt, updated.CreatedAt)
	})

	t.Run("повторное удаление", func(t *testing.T) {
		uc := app.NewNoteUseCase(memory.NewStore().Notes())
		note, err := uc.CreateNote(ctx, 1, entities.NoteDraft{Title: "t"})
		require.NoError(t, err)

		require.NoError(t, uc.DeleteNote(ctx, 1, note.ID))
		assert.ErrorIs(t, uc.DeleteNote(ctx, 1, note.ID), entities.ErrNoteNotFound)
	})

	t.Run("порядок списка", func(t *testing.T) {
		uc := app.NewNoteUseCase(memory.NewStore().Notes())
		for _, title := range []string{"N1", "N2", "N3"} {
			_, err := uc.CreateNote(ctx, 1, entities.NoteDraft{Title: title})
			require.NoError(t, err)
			time.Sleep(time.Millisecond)
		}

		notes, err := uc.ListNotes(ctx, 1)
		require.NoError(t, err)
		require.Len(t, notes, 3)
		assert.Equal(t, "N3", notes[0].Title)
		assert.Equal(t, "N2", notes[1].Title)
		assert.Equal(t, "N1", notes[2].Title)

		other, err := uc.ListNotes(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, other)
	})
}
