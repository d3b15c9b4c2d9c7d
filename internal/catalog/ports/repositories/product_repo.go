package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
)

// ProductRepository определяет операции хранения товаров.
type ProductRepository interface {
	// SelectByNameLike возвращает товары, название которых содержит
	// ключевое слово, в порядке возрастания номера.
	SelectByNameLike(ctx context.Context, tx pgx.Tx, keyword values.ProductName) ([]*entities.Product, error)

	// Insert сохраняет новый товар и возвращает его с присвоенным номером.
	Insert(ctx context.Context, tx pgx.Tx, product *entities.Product) (*entities.Product, error)

	// Exists сообщает, существует ли товар с точно таким названием.
	Exists(ctx context.Context, tx pgx.Tx, name values.ProductName) (bool, error)
}
