package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
)

// UserRepository определяет операции хранения пользователей.
type UserRepository interface {
	// SelectByName возвращает пользователя по имени, nil если его нет.
	SelectByName(ctx context.Context, tx pgx.Tx, name values.UserName) (*entities.User, error)

	// Insert сохраняет нового пользователя.
	Insert(ctx context.Context, tx pgx.Tx, user *entities.User) (*entities.User, error)
}
