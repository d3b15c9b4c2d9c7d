package app

import (
	"context"

	"go.uber.org/zap"

	"goshop/internal/catalog/app/dto"
	"goshop/internal/catalog/ports/api"
	"goshop/internal/catalog/ports/repositories"
	"goshop/internal/catalog/ports/services"
	"goshop/pkg/logger"
)

// Константы сообщений аутентификации.
const (
	methodAuthenticate = "AuthenticateUseCase.Execute"

	msgAuthStarted   = "authenticating user"
	msgAuthSucceeded = "user authenticated"
)

// AuthenticateUseCaseImpl реализует порт api.AuthenticateUseCase.
type AuthenticateUseCaseImpl struct {
	userSvc services.UserService
}

// NewAuthenticateUseCase создает прикладной сервис аутентификации.
func NewAuthenticateUseCase(userSvc services.UserService) api.AuthenticateUseCase {
	return &AuthenticateUseCaseImpl{userSvc: userSvc}
}

// Execute преобразует форму входа в пользователя-кандидата (введенный
// пароль хешируется при создании), делегирует проверку доменному сервису
// и отображает найденного пользователя в DTO.
func (u *AuthenticateUseCaseImpl) Execute(ctx context.Context, db repositories.Database, form *dto.LoginForm) (*dto.UserDTO, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))
	log.Debug(ctx, msgAuthStarted, zap.String("userName", form.Name))

	candidate, err := form.ToDomain()
	if err != nil {
		return nil, err
	}

	user, err := u.userSvc.Authenticate(ctx, db, candidate)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgAuthSucceeded, zap.String("userID", user.Identity().Value()))
	result := dto.UserToDTO(user)
	return &result, nil
}
