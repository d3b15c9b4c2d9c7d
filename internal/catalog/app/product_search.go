// Package app содержит прикладные сервисы каталога: тонкую оркестрацию
// доменных сервисов в один линейный конвейер на запрос.
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

// Константы сообщений поиска товаров.
const (
	methodProductSearch = "ProductSearchUseCase.Search"

	msgSearchStarted = "searching products by keyword"
	msgSearchDone    = "products found"
)

// ProductSearchUseCaseImpl реализует порт api.ProductSearchUseCase.
type ProductSearchUseCaseImpl struct {
	productSvc services.ProductService
}

// NewProductSearchUseCase создает прикладной сервис поиска товаров.
func NewProductSearchUseCase(productSvc services.ProductService) api.ProductSearchUseCase {
	return &ProductSearchUseCaseImpl{productSvc: productSvc}
}

// Search преобразует ключевое слово в объект-значение, делегирует поиск
// доменному сервису и отображает результат в DTO.
func (u *ProductSearchUseCaseImpl) Search(ctx context.Context, db repositories.Database, form *dto.ProductSearchForm) ([]dto.ProductDTO, error) {
	log := logger.Log(ctx).With(zap.String("method", methodProductSearch))
	log.Debug(ctx, msgSearchStarted, zap.String("keyword", form.Keyword))

	keyword, err := form.ToDomain()
	if err != nil {
		return nil, err
	}

	products, err := u.productSvc.ByKeyword(ctx, db, keyword)
	if err != nil {
		return nil, err
	}

	log.Debug(ctx, msgSearchDone, zap.Int("count", len(products)))
	return dto.ProductsToDTO(products), nil
}
