// Package http содержит компоненты HTTP сервера каталога.
package http

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goshop/internal/catalog/app/dto"
	"goshop/internal/catalog/ports/api"
	"goshop/internal/catalog/ports/repositories"
	"goshop/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCategories      = "catalog handler: list categories"
	LogHandlerProductSearch   = "catalog handler: search products"
	LogHandlerProductRegister = "catalog handler: register product"

	ErrorInvalidRequestBody = "invalid request body"
)

// CatalogHandler содержит HTTP обработчики каталога товаров.
type CatalogHandler struct {
	db              repositories.Database
	productSearch   api.ProductSearchUseCase
	productRegister api.ProductRegisterUseCase
}

// NewCatalogHandler создает новый экземпляр обработчика каталога.
func NewCatalogHandler(
	db repositories.Database,
	productSearch api.ProductSearchUseCase,
	productRegister api.ProductRegisterUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		db:              db,
		productSearch:   productSearch,
		productRegister: productRegister,
	}
}

// Categories обрабатывает запрос списка категорий товаров.
func (h *CatalogHandler) Categories(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCategories)

	categories, err := h.productRegister.Categories(requestCtx, h.db)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{"categories": categories}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Search обрабатывает запрос поиска товаров по ключевому слову.
func (h *CatalogHandler) Search(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerProductSearch)

	form := dto.ProductSearchForm{Keyword: ctx.Query("keyword")}
	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		return respondFieldErrors(ctx, fieldErrors)
	}

	products, err := h.productSearch.Search(requestCtx, h.db, &form)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{"products": products}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Register обрабатывает запрос регистрации нового товара.
func (h *CatalogHandler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerProductRegister)

	var form dto.ProductRegisterForm
	if err := ctx.Bind().JSON(&form); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequestBody, zap.Error(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequestBody,
		})
	}

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		return respondFieldErrors(ctx, fieldErrors)
	}

	product, err := h.productRegister.Execute(requestCtx, h.db, &form)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"product": product}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
