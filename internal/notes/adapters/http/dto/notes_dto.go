package dto

import (
	"time"

	"gonotes/internal/notes/domain/entities"
)

// CreateNoteRequest представляет тело запроса создания заметки.
type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content"`
}

// UpdateNoteRequest представляет частичное обновление; null и отсутствие поля не меняют его.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteResponse представляет заметку в ответе.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft преобразует запрос в черновик заметки.
func (r CreateNoteRequest) Draft() entities.NoteDraft {
	return entities.NoteDraft{Title: r.Title, Content: r.Content}
}

// Patch преобразует запрос в частичное обновление.
func (r UpdateNoteRequest) Patch() entities.NotePatch {
	return entities.NotePatch{Title: r.Title, Content: r.Content}
}

// NewNoteResponse преобразует сущность заметки в ответ.
func NewNoteResponse(note *entities.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NewNoteListResponse преобразует список заметок; пустой список сериализуется как [].
func NewNoteListResponse(notes []*entities.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewNoteResponse(n))
	}
	return out
}
