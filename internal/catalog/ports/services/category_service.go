// Package services определяет порты доменных сервисов.
// Доменный сервис открывает одну транзакцию на операцию и
// переводит отказы хранилища в таксономию ошибок приложения.
package services

import (
	"context"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/repositories"
)

// CategoryService определяет бизнес-операции над категориями.
type CategoryService interface {
	// All возвращает все категории.
	All(ctx context.Context, db repositories.Database) ([]*entities.Category, error)

	// ByID возвращает категорию по номеру. Отсутствие - ошибка поиска.
	ByID(ctx context.Context, db repositories.Database, id values.CategoryID) (*entities.Category, error)
}
