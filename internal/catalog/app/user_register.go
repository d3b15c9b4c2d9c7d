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

// Константы сообщений регистрации пользователей.
const (
	methodUserRegisterExecute = "UserRegisterUseCase.Execute"

	msgUserRegisterStarted = "registering user"
	msgUserPersisted       = "user persisted"
)

// UserRegisterUseCaseImpl реализует порт api.UserRegisterUseCase.
type UserRegisterUseCaseImpl struct {
	userSvc services.UserService
}

// NewUserRegisterUseCase создает прикладной сервис регистрации пользователей.
func NewUserRegisterUseCase(userSvc services.UserService) api.UserRegisterUseCase {
	return &UserRegisterUseCaseImpl{userSvc: userSvc}
}

// Execute преобразует форму в нового пользователя (свежий идентификатор,
// хешированный пароль) и сохраняет его через доменный сервис.
func (u *UserRegisterUseCaseImpl) Execute(ctx context.Context, db repositories.Database, form *dto.UserRegisterForm) (*dto.UserDTO, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUserRegisterExecute))
	log.Debug(ctx, msgUserRegisterStarted, zap.String("userName", form.Name))

	user, err := form.ToDomain()
	if err != nil {
		return nil, err
	}

	registered, err := u.userSvc.Register(ctx, db, user)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserPersisted, zap.String("userID", registered.Identity().Value()))
	result := dto.UserToDTO(registered)
	return &result, nil
}
