// Package memory хранит пользователей и заметки в памяти процесса.
// Используется при NOTES_STORAGE_DRIVER=memory и в тестах HTTP-слоя.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/repositories"
)

// Store содержит данные обоих репозиториев под одной блокировкой.
type Store struct {
	mu         sync.RWMutex
	now        func() time.Time
	users      map[int64]entities.User
	emails     map[string]int64
	notes      map[int64]entities.Note
	nextUserID int64
	nextNoteID int64
}

// NewStore создает пустое хранилище.
func NewStore() *Store {
	return &Store{
		now:    time.Now,
		users:  make(map[int64]entities.User),
		emails: make(map[string]int64),
		notes:  make(map[int64]entities.Note),
	}
}

// Users возвращает репозиторий пользователей поверх хранилища.
func (s *Store) Users() repositories.UserRepository {
	return (*userRepo)(s)
}

// Notes возвращает репозиторий заметок поверх хранилища.
func (s *Store) Notes() repositories.NoteRepository {
	return (*noteRepo)(s)
}

// SetUserActive меняет флаг активности пользователя.
func (s *Store) SetUserActive(id int64, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.IsActive = active
		s.users[id] = u
	}
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emails[user.Email]; ok {
		return nil, services.ErrEmailAlreadyExists
	}

	r.nextUserID++
	created := entities.User{
		ID:             r.nextUserID,
		Email:          user.Email,
		FullName:       cloneString(user.FullName),
		HashedPassword: user.HashedPassword,
		IsActive:       user.IsActive,
		CreatedAt:      r.now().UTC(),
	}
	r.users[created.ID] = created
	r.emails[created.Email] = created.ID

	out := created
	return &out, nil
}

func (r *userRepo) FindByID(_ context.Context, id int64) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	u.FullName = cloneString(u.FullName)
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	id, ok := r.emails[email]
	r.mu.RUnlock()

	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

type noteRepo Store

func copyNote(n entities.Note) *entities.Note {
	n.Content = cloneString(n.Content)
	return &n
}

func (r *noteRepo) Create(_ context.Context, ownerID int64, draft entities.NoteDraft) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextNoteID++
	now := r.now().UTC()
	note := entities.Note{
		ID:        r.nextNoteID,
		OwnerID:   ownerID,
		Title:     draft.Title,
		Content:   cloneString(draft.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[note.ID] = note
	return copyNote(note), nil
}

func (r *noteRepo) GetByID(_ context.Context, ownerID, noteID int64) (*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return nil, entities.ErrNoteNotFound
	}
	return copyNote(n), nil
}

func (r *noteRepo) ListByOwner(_ context.Context, ownerID int64) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*entities.Note, 0)
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			notes = append(notes, copyNote(n))
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].ID > notes[j].ID
	})
	return notes, nil
}

func (r *noteRepo) Update(
	_ context.Context,
	ownerID, noteID int64,
	patch entities.NotePatch,
) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return nil, entities.ErrNoteNotFound
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = cloneString(patch.Content)
	}
	now := r.now().UTC()
	if !now.After(n.UpdatedAt) {
		now = n.UpdatedAt.Add(time.Microsecond)
	}
	n.UpdatedAt = now
	r.notes[noteID] = n
	return copyNote(n), nil
}

func (r *noteRepo) Delete(_ context.Context, ownerID, noteID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[noteID]
	if !ok || n.OwnerID != ownerID {
		return entities.ErrNoteNotFound
	}
	delete(r.notes, noteID)
	return nil
}
