package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goshop/internal/catalog/domain/apperrors"
	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/repositories"
	"goshop/pkg/logger"
)

// Константы сообщений репозитория пользователей.
const (
	errCtxSelectUser = "querying user by name"
	errCtxInsertUser = "inserting user"
	errCtxUserRow    = "converting stored user row"
)

// UserRepository реализует порт repositories.UserRepository.
type UserRepository struct{}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{}
}

// SelectByName возвращает пользователя по имени, nil если его нет.
func (r *UserRepository) SelectByName(ctx context.Context, tx pgx.Tx, name values.UserName) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "SelectByName"))

	query := `
        SELECT user_id, user_name, password, mail
        FROM app_user
        WHERE user_name = $1
    `

	var (
		rowID       string
		rowName     string
		rowPassword string
		rowMail     string
	)
	err := tx.QueryRow(ctx, query, name.Value()).Scan(&rowID, &rowName, &rowPassword, &rowMail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("userName", name.Value()))
			return nil, nil
		}
		log.Error(ctx, errCtxSelectUser, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxSelectUser, err)
	}

	user, err := userFromRow(rowID, rowName, rowPassword, rowMail)
	if err != nil {
		log.Error(ctx, errCtxUserRow, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxUserRow, err)
	}
	return user, nil
}

// Insert сохраняет нового пользователя. Идентификатор сгенерирован
// доменом, хранилище ключей не присваивает.
func (r *UserRepository) Insert(ctx context.Context, tx pgx.Tx, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Insert"))

	query := `
        INSERT INTO app_user (user_id, user_name, password, mail)
        VALUES ($1, $2, $3, $4)
    `

	_, err := tx.Exec(ctx, query,
		user.Identity().Value(),
		user.Name().Value(),
		user.Password().Value(),
		user.Mail().Value(),
	)
	if err != nil {
		log.Error(ctx, errCtxInsertUser, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxInsertUser, err)
	}

	return user, nil
}

// Восстанавливает сущность пользователя из строки хранилища.
// Пароль уже хеширован и повторно не преобразуется.
func userFromRow(id, name, password, mail string) (*entities.User, error) {
	userID, err := values.NewUserID(id)
	if err != nil {
		return nil, err
	}
	userName, err := values.NewUserName(name)
	if err != nil {
		return nil, err
	}
	userPassword, err := values.NewPassword(password)
	if err != nil {
		return nil, err
	}
	userMail, err := values.NewMail(mail)
	if err != nil {
		return nil, err
	}
	return entities.RebuildUser(userID, userName, userPassword, userMail), nil
}
