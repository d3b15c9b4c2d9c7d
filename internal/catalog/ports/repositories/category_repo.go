package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
)

// CategoryRepository определяет операции хранения категорий.
type CategoryRepository interface {
	// SelectAll возвращает все категории.
	SelectAll(ctx context.Context, tx pgx.Tx) ([]*entities.Category, error)

	// SelectByID возвращает категорию по номеру, nil если ее нет.
	SelectByID(ctx context.Context, tx pgx.Tx, id values.CategoryID) (*entities.Category, error)
}
