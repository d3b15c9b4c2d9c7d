// Package api определяет порты прикладных сервисов.
// Прикладной сервис оркестрирует доменные сервисы в рамках одного
// запроса и преобразует сущности в объекты передачи данных.
package api

import (
	"context"

	"goshop/internal/catalog/app/dto"
	"goshop/internal/catalog/ports/repositories"
)

// ProductSearchUseCase ищет товары по ключевому слову.
type ProductSearchUseCase interface {
	Search(ctx context.Context, db repositories.Database, form *dto.ProductSearchForm) ([]dto.ProductDTO, error)
}

// ProductRegisterUseCase регистрирует новый товар.
type ProductRegisterUseCase interface {
	// Categories возвращает список категорий для формы регистрации.
	Categories(ctx context.Context, db repositories.Database) ([]dto.CategoryDTO, error)

	// Execute проверяет уникальность, сохраняет товар и подставляет категорию.
	Execute(ctx context.Context, db repositories.Database, form *dto.ProductRegisterForm) (*dto.ProductDTO, error)
}

// AuthenticateUseCase аутентифицирует пользователя по учетным данным.
type AuthenticateUseCase interface {
	Execute(ctx context.Context, db repositories.Database, form *dto.LoginForm) (*dto.UserDTO, error)
}

// UserRegisterUseCase регистрирует нового пользователя.
type UserRegisterUseCase interface {
	Execute(ctx context.Context, db repositories.Database, form *dto.UserRegisterForm) (*dto.UserDTO, error)
}
