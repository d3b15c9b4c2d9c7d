package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"goshop/internal/catalog/domain/apperrors"
	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/repositories"
	"goshop/internal/catalog/ports/services"
	"goshop/pkg/logger"
)

// Константы сообщений сервиса товаров.
const (
	methodProductByKeyword = "ProductService.ByKeyword"
	methodProductRegister  = "ProductService.Register"
	methodProductExists    = "ProductService.Exists"

	msgNoProductsForKeyword = "no products match keyword"
	msgProductRegistered    = "product registered"
	msgDuplicateProductName = "duplicate product name"

	errCtxCommitTx = "committing transaction"
)

// ProductServiceImpl реализует порт services.ProductService.
type ProductServiceImpl struct {
	repo repositories.ProductRepository
}

// NewProductService создает доменный сервис товаров.
func NewProductService(repo repositories.ProductRepository) services.ProductService {
	return &ProductServiceImpl{repo: repo}
}

// ByKeyword возвращает товары по подстроке названия в порядке возрастания
// номера. Пустой результат - ошибка поиска.
func (s *ProductServiceImpl) ByKeyword(ctx context.Context, db repositories.Database, keyword values.ProductName) ([]*entities.Product, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodProductByKeyword),
		zap.String("keyword", keyword.Value()),
	)

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxBeginTx, err)
	}
	defer endReadOnly(ctx, tx)

	products, err := s.repo.SelectByNameLike(ctx, tx, keyword)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		log.Debug(ctx, msgNoProductsForKeyword)
		return nil, apperrors.NewSearch(fmt.Sprintf("no product contains keyword %s", keyword.Value()))
	}

	return products, nil
}

// Register сохраняет товар и фиксирует транзакцию.
func (s *ProductServiceImpl) Register(ctx context.Context, db repositories.Database, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodProductRegister),
		zap.String("name", product.Name().Value()),
	)

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxBeginTx, err)
	}

	registered, err := s.repo.Insert(ctx, tx, product)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, errCtxCommitTx, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxCommitTx, err)
	}

	log.Info(ctx, msgProductRegistered, zap.Int32("productID", registered.Identity().Value()))
	return registered, nil
}

// Exists завершается успешно, если товара с таким названием нет.
// Обратный контракт: найденный дубликат - ошибка регистрации.
func (s *ProductServiceImpl) Exists(ctx context.Context, db repositories.Database, name values.ProductName) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodProductExists),
		zap.String("name", name.Value()),
	)

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errCtxBeginTx, zap.Error(err))
		return apperrors.WrapInternal(errCtxBeginTx, err)
	}
	defer endReadOnly(ctx, tx)

	exists, err := s.repo.Exists(ctx, tx, name)
	if err != nil {
		return err
	}
	if exists {
		log.Debug(ctx, msgDuplicateProductName)
		return apperrors.NewRegister(fmt.Sprintf("%s is already registered", name.Value()))
	}

	return nil
}
