package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/ports/cache"
	"gonotes/internal/notes/ports/repositories"
	"gonotes/pkg/logger"
)

const userKeyPrefix = "notes:user:"

// cachedUser - представление пользователя в кеше, без хэша пароля.
type cachedUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository кеширует результаты FindByID. Пользователи неизменяемы, поэтому
// запись живет до истечения ttl. FindByID из кеша возвращает пользователя без хэша пароля.
type UserRepository struct {
	next  repositories.UserRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewUserRepository оборачивает репозиторий пользователей кешем.
func NewUserRepository(next repositories.UserRepository, c cache.Cache, ttl time.Duration) repositories.UserRepository {
	return &UserRepository{next: next, cache: c, ttl: ttl}
}

// UserKey возвращает ключ кеша для пользователя.
func UserKey(id int64) string {
	return userKeyPrefix + strconv.FormatInt(id, 10)
}

// Create делегирует создание пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	return r.next.Create(ctx, user)
}

// FindByEmail делегирует поиск по email без кеширования.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.next.FindByEmail(ctx, email)
}

// FindByID ищет пользователя в кеше, при промахе читает хранилище и заполняет кеш.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user_cache"), zap.Int64("id", id))
	key := UserKey(id)

	data, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cu cachedUser
		if err := json.Unmarshal(data, &cu); err == nil {
			log.Debug(ctx, "user cache hit")
			return &entities.User{
				ID:        cu.ID,
				Email:     cu.Email,
				FullName:  cu.FullName,
				IsActive:  cu.IsActive,
				CreatedAt: cu.CreatedAt,
			}, nil
		}
		log.Warn(ctx, "corrupted user cache entry")
	case errors.Is(err, cache.ErrCacheMiss):
		log.Debug(ctx, "user cache miss")
	default:
		log.Warn(ctx, "user cache unavailable", zap.Error(err))
	}

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	})
	if err == nil {
		if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
			log.Warn(ctx, "failed to cache user", zap.Error(err))
		}
	}

	return user, nil
}
