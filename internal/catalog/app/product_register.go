package app

import (
	"context"

	"go.uber.org/zap"

	"goshop/internal/catalog/app/dto"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/api"
	"goshop/internal/catalog/ports/repositories"
	"goshop/internal/catalog/ports/services"
	"goshop/pkg/logger"
)

// Константы сообщений регистрации товаров.
const (
	methodProductCategories = "ProductRegisterUseCase.Categories"
	methodProductExecute    = "ProductRegisterUseCase.Execute"

	msgRegisterStarted       = "registering product"
	msgProductPersisted      = "product persisted"
	msgCategoryResolveFailed = "category resolution failed, product returned without category"
)

// ProductRegisterUseCaseImpl реализует порт api.ProductRegisterUseCase.
type ProductRegisterUseCaseImpl struct {
	categorySvc services.CategoryService
	productSvc  services.ProductService
}

// NewProductRegisterUseCase создает прикладной сервис регистрации товаров.
func NewProductRegisterUseCase(categorySvc services.CategoryService, productSvc services.ProductService) api.ProductRegisterUseCase {
	return &ProductRegisterUseCaseImpl{categorySvc: categorySvc, productSvc: productSvc}
}

// Categories возвращает список категорий для формы регистрации.
func (u *ProductRegisterUseCaseImpl) Categories(ctx context.Context, db repositories.Database) ([]dto.CategoryDTO, error) {
	log := logger.Log(ctx).With(zap.String("method", methodProductCategories))

	categories, err := u.categorySvc.All(ctx, db)
	if err != nil {
		return nil, err
	}

	log.Debug(ctx, "categories loaded", zap.Int("count", len(categories)))
	return dto.CategoriesToDTO(categories), nil
}

// Execute регистрирует новый товар: проверяет уникальность названия,
// сохраняет товар и подставляет категорию из хранилища, так как при
// регистрации сохраняется только внешний ключ.
//
// Шаги не атомарны: сбой после вставки оставляет товар сохраненным.
// Отказ подстановки категории не прерывает операцию, а журналируется,
// и товар возвращается без категории.
func (u *ProductRegisterUseCaseImpl) Execute(ctx context.Context, db repositories.Database, form *dto.ProductRegisterForm) (*dto.ProductDTO, error) {
	log := logger.Log(ctx).With(zap.String("method", methodProductExecute))
	log.Debug(ctx, msgRegisterStarted, zap.String("name", form.Name))

	name, err := values.NewProductName(form.Name)
	if err != nil {
		return nil, err
	}

	if err := u.productSvc.Exists(ctx, db, name); err != nil {
		return nil, err
	}

	product, err := form.ToDomain()
	if err != nil {
		return nil, err
	}

	registered, err := u.productSvc.Register(ctx, db, product)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, msgProductPersisted, zap.Int32("productID", registered.Identity().Value()))

	category, err := u.categorySvc.ByID(ctx, db, registered.Category().Identity())
	if err != nil {
		log.Warn(ctx, msgCategoryResolveFailed,
			zap.Int32("categoryID", registered.Category().Identity().Value()),
			zap.Error(err))
		registered.SetCategory(nil)
	} else {
		registered.SetCategory(category)
	}

	result := dto.ProductToDTO(registered)
	return &result, nil
}
