// Package service содержит реализации доменных сервисов каталога.
// Сервис владеет границами транзакции: одна транзакция на операцию,
// фиксация только на путях записи, на путях чтения транзакция
// завершается откатом.
package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goshop/internal/catalog/domain/apperrors"
	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/repositories"
	"goshop/internal/catalog/ports/services"
	"goshop/pkg/logger"
)

// Константы сообщений сервиса категорий.
const (
	methodCategoryAll  = "CategoryService.All"
	methodCategoryByID = "CategoryService.ByID"

	msgCategoryNotFound = "category not found"

	errCtxBeginTx = "beginning transaction"
)

// CategoryServiceImpl реализует порт services.CategoryService.
type CategoryServiceImpl struct {
	repo repositories.CategoryRepository
}

// NewCategoryService создает доменный сервис категорий.
func NewCategoryService(repo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{repo: repo}
}

// All возвращает все категории.
func (s *CategoryServiceImpl) All(ctx context.Context, db repositories.Database) ([]*entities.Category, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCategoryAll))

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxBeginTx, err)
	}
	defer endReadOnly(ctx, tx)

	return s.repo.SelectAll(ctx, tx)
}

// ByID возвращает категорию по номеру. Отсутствие - ошибка поиска.
func (s *CategoryServiceImpl) ByID(ctx context.Context, db repositories.Database, id values.CategoryID) (*entities.Category, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodCategoryByID),
		zap.Int32("categoryID", id.Value()),
	)

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxBeginTx, err)
	}
	defer endReadOnly(ctx, tx)

	category, err := s.repo.SelectByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		log.Debug(ctx, msgCategoryNotFound)
		return nil, apperrors.NewSearch(fmt.Sprintf("category %d not found", id.Value()))
	}

	return category, nil
}

// Завершает транзакцию пути чтения откатом.
func endReadOnly(ctx context.Context, tx pgx.Tx) {
	_ = tx.Rollback(ctx)
}
