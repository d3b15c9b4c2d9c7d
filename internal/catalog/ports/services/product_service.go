package services

import (
	"context"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/repositories"
)

// ProductService определяет бизнес-операции над товарами.
type ProductService interface {
	// ByKeyword возвращает товары по подстроке названия в порядке
	// возрастания номера. Пустой результат - ошибка поиска.
	ByKeyword(ctx context.Context, db repositories.Database, keyword values.ProductName) ([]*entities.Product, error)

	// Register сохраняет товар и возвращает его с присвоенным номером.
	Register(ctx context.Context, db repositories.Database, product *entities.Product) (*entities.Product, error)

	// Exists завершается успешно, если товара с таким названием нет;
	// найденный дубликат - ошибка регистрации.
	Exists(ctx context.Context, db repositories.Database, name values.ProductName) error
}
