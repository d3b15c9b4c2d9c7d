package http

import (
	"github.com/gofiber/fiber/v3"

	"goshop/internal/catalog/adapters/http/middleware"
	"goshop/internal/catalog/ports/api"
	"goshop/internal/catalog/ports/repositories"
	"goshop/internal/catalog/ports/services"
)

// SetupRouter настраивает маршрутизацию HTTP сервера каталога.
func SetupRouter(
	app *fiber.App,
	db repositories.Database,
	productSearch api.ProductSearchUseCase,
	productRegister api.ProductRegisterUseCase,
	authenticate api.AuthenticateUseCase,
	userRegister api.UserRegisterUseCase,
	tokenService services.TokenService,
) {
	catalogHandler := NewCatalogHandler(db, productSearch, productRegister)
	authHandler := NewAuthHandler(db, authenticate, userRegister, tokenService)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Маршруты каталога (публичные).
	apiV1.Get("/categories", catalogHandler.Categories)
	apiV1.Get("/products/search", catalogHandler.Search)

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Регистрация товара доступна только аутентифицированным пользователям.
	apiV1.Post("/products", catalogHandler.Register, middleware.NewAuthMiddleware(tokenService))

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
