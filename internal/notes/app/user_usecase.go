package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gonotes/internal/notes/domain/entities"
	"gonotes/internal/notes/domain/services"
	"gonotes/internal/notes/ports/api"
	"gonotes/internal/notes/ports/repositories"
	svc "gonotes/internal/notes/ports/services"
	"gonotes/pkg/logger"
)

const (
	methodAuthenticate = "Authenticate"

	msgTokenRejected     = "access token rejected"
	msgUserMissing       = "token subject does not exist"
	msgUserInactive      = "inactive user"
	msgUserAuthenticated = "user authenticated"
	msgErrLoadUser       = "failed to load user"

	errCtxValidatingToken = "validating token"
	errCtxLoadingUser     = "loading user"
)

// UserUseCaseImpl разрешает токен доступа в активного пользователя.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
	tokenSvc svc.TokenService
}

// NewUserUseCase создает новый экземпляр UserUseCaseImpl.
func NewUserUseCase(userRepo repositories.UserRepository, tokenSvc svc.TokenService) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo, tokenSvc: tokenSvc}
}

// Authenticate проверяет токен и возвращает его владельца. Отсутствующий пользователь
// считается неверным токеном, неактивный - services.ErrInactiveUser.
func (u *UserUseCaseImpl) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	userID, err := u.tokenSvc.ValidateAccessToken(ctx, token)
	if err != nil {
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserMissing, zap.Int64("userID", userID))
			return nil, fmt.Errorf("%s: %w", errCtxLoadingUser, services.ErrInvalidJWTToken)
		}
		log.Error(ctx, msgErrLoadUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxLoadingUser, err)
	}

	if !user.IsActive {
		log.Debug(ctx, msgUserInactive, zap.Int64("userID", userID))
		return nil, services.ErrInactiveUser
	}

	log.Debug(ctx, msgUserAuthenticated, zap.Int64("userID", userID))
	return user, nil
}
