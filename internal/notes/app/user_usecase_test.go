package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/app"
	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
)

func TestAuthenticate(t *testing.T) {
	ctx := testContext(t)

	t.Run("Активный пользователь", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenSvc := new(MockTokenService)
		tokenSvc.On("ValidateAccessToken", mock.Anything, "tok").Return(int64(3), nil)
		userRepo.On("FindByID", mock.Anything, int64(3)).Return(&entities.User{ID: 3, IsActive: true}, nil)

		user, err := app.NewUserUseCase(userRepo, tokenSvc).Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("Неактивный пользователь", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenSvc := new(MockTokenService)
		tokenSvc.On("ValidateAccessToken", mock.Anything, "tok").Return(int64(3), nil)
		userRepo.On("FindByID", mock.Anything, int64(3)).Return(&entities.User{ID: 3}, nil)

		_, err := app.NewUserUseCase(userRepo, tokenSvc).Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, services.ErrInactiveUser)
	})

	t.Run("Пользователь удален", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenSvc := new(MockTokenService)
		tokenSvc.On("ValidateAccessToken", mock.Anything, "tok").Return(int64(3), nil)
		userRepo.On("FindByID", mock.Anything, int64(3)).Return(nil, entities.ErrUserNotFound)

		_, err := app.NewUserUseCase(userRepo, tokenSvc).Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, services.ErrInvalidJWTToken)
	})

	t.Run("Просроченный токен", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenSvc := new(MockTokenService)
		tokenSvc.On("ValidateAccessToken", mock.Anything, "old").Return(int64(0), services.ErrExpiredJWTToken)

		_, err := app.NewUserUseCase(userRepo, tokenSvc).Authenticate(ctx, "old")
		assert.ErrorIs(t, err, services.ErrExpiredJWTToken)
		userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Ошибка хранилища", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenSvc := new(MockTokenService)
		dbErr := errors.New("db down")
		tokenSvc.On("ValidateAccessToken", mock.Anything, "tok").Return(int64(3), nil)
		userRepo.On("FindByID", mock.Anything, int64(3)).Return(nil, dbErr)

		_, err := app.NewUserUseCase(userRepo, tokenSvc).Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, services.ErrInvalidJWTToken)
	})
}
