// Package postgres реализует порты репозиториев поверх pgx.
// Репозиторий не владеет транзакцией: каждый метод работает в
// переданном транзакционном дескрипторе.
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

// Константы сообщений репозитория категорий.
const (
	errCtxSelectCategories = "querying categories"
	errCtxSelectCategory   = "querying category by id"
	errCtxCategoryRow      = "converting stored category row"
)

// CategoryRepository реализует порт repositories.CategoryRepository.
type CategoryRepository struct{}

// NewCategoryRepository создает репозиторий категорий.
func NewCategoryRepository() repositories.CategoryRepository {
	return &CategoryRepository{}
}

// SelectAll возвращает все категории в порядке возрастания номера.
func (r *CategoryRepository) SelectAll(ctx context.Context, tx pgx.Tx) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "SelectAll"))

	query := `
        SELECT id, name
        FROM product_category
        ORDER BY id
    `

	rows, err := tx.Query(ctx, query)
	if err != nil {
		log.Error(ctx, errCtxSelectCategories, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxSelectCategories, err)
	}
	defer rows.Close()

	var categories []*entities.Category
	for rows.Next() {
		var (
			id   int32
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			log.Error(ctx, errCtxSelectCategories, zap.Error(err))
			return nil, apperrors.WrapInternal(errCtxSelectCategories, err)
		}

		category, err := categoryFromRow(id, name)
		if err != nil {
			log.Error(ctx, errCtxCategoryRow, zap.Error(err))
			return nil, apperrors.WrapInternal(errCtxCategoryRow, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, errCtxSelectCategories, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxSelectCategories, err)
	}

	return categories, nil
}

// SelectByID возвращает категорию по номеру, nil если ее нет.
func (r *CategoryRepository) SelectByID(ctx context.Context, tx pgx.Tx, id values.CategoryID) (*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("repository", "category"), zap.String("method", "SelectByID"))

	query := `
        SELECT id, name
        FROM product_category
        WHERE id = $1
    `

	var (
		rowID   int32
		rowName string
	)
	err := tx.QueryRow(ctx, query, id.Value()).Scan(&rowID, &rowName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "category not found", zap.Int32("id", id.Value()))
			return nil, nil
		}
		log.Error(ctx, errCtxSelectCategory, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxSelectCategory, err)
	}

	category, err := categoryFromRow(rowID, rowName)
	if err != nil {
		log.Error(ctx, errCtxCategoryRow, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxCategoryRow, err)
	}
	return category, nil
}

// Восстанавливает сущность категории из строки хранилища.
func categoryFromRow(id int32, name string) (*entities.Category, error) {
	categoryID, err := values.NewCategoryID(id)
	if err != nil {
		return nil, err
	}
	categoryName, err := values.NewCategoryName(name)
	if err != nil {
		return nil, err
	}
	return entities.NewCategory(categoryID, categoryName), nil
}
