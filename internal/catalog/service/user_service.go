package service

import (
	"context"

	"go.uber.org/zap"

	"goshop/internal/catalog/domain/apperrors"
	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/ports/repositories"
	"goshop/internal/catalog/ports/services"
	"goshop/pkg/logger"
)

// Константы сообщений сервиса пользователей.
const (
	methodUserRegister     = "UserService.Register"
	methodUserAuthenticate = "UserService.Authenticate"

	msgUserRegistered   = "user registered"
	msgUnknownUserName  = "unknown user name"
	msgPasswordMismatch = "password mismatch"

	// Различие двух отказов сохраняется для журнала и внутренних
	// потребителей; наружный слой обязан показывать их одинаково.
	msgErrUnknownUserName   = "unknown username"
	msgErrIncorrectPassword = "incorrect password"
)

// UserServiceImpl реализует порт services.UserService.
type UserServiceImpl struct {
	repo repositories.UserRepository
}

// NewUserService создает доменный сервис пользователей.
func NewUserService(repo repositories.UserRepository) services.UserService {
	return &UserServiceImpl{repo: repo}
}

// Register сохраняет нового пользователя и фиксирует транзакцию.
func (s *UserServiceImpl) Register(ctx context.Context, db repositories.Database, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodUserRegister),
		zap.String("userName", user.Name().Value()),
	)

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxBeginTx, err)
	}

	registered, err := s.repo.Insert(ctx, tx, user)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, errCtxCommitTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxCommitTx, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", registered.Identity().Value()))
	return registered, nil
}

// Authenticate сверяет кандидата с сохраненным пользователем.
// Кандидат уже несет дайджест пароля, сравнение идет по дайджестам.
func (s *UserServiceImpl) Authenticate(ctx context.Context, db repositories.Database, candidate *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodUserAuthenticate),
		zap.String("userName", candidate.Name().Value()),
	)

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxBeginTx, err)
	}
	defer endReadOnly(ctx, tx)

	stored, err := s.repo.SelectByName(ctx, tx, candidate.Name())
	if err != nil {
		return nil, err
	}
	if stored == nil {
		log.Debug(ctx, msgUnknownUserName)
		return nil, apperrors.NewAuthenticate(msgErrUnknownUserName)
	}

	if !candidate.Password().Equals(stored.Password()) {
		log.Debug(ctx, msgPasswordMismatch, zap.String("userID", stored.Identity().Value()))
		return nil, apperrors.NewAuthenticate(msgErrIncorrectPassword)
	}

	return stored, nil
}
