package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goshop/internal/catalog/domain/apperrors"
	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/repositories"
	"goshop/pkg/logger"
)

// Константы сообщений репозитория товаров.
const (
	errCtxSelectProducts = "querying products by keyword"
	errCtxInsertProduct  = "inserting product"
	errCtxProductExists  = "checking product existence"
	errCtxProductRow     = "converting stored product row"
)

// ProductRepository реализует порт repositories.ProductRepository.
type ProductRepository struct{}

// NewProductRepository создает репозиторий товаров.
func NewProductRepository() repositories.ProductRepository {
	return &ProductRepository{}
}

// SelectByNameLike возвращает товары, название которых содержит ключевое
// слово, вместе с категориями, в порядке возрастания номера товара.
func (r *ProductRepository) SelectByNameLike(ctx context.Context, tx pgx.Tx, keyword values.ProductName) ([]*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "SelectByNameLike"))

	query := `
        SELECT p.id, p.name, p.price, c.id, c.name
        FROM product p
        JOIN product_category c ON p.category_id = c.id
        WHERE p.name LIKE '%' || $1 || '%'
        ORDER BY p.id
    `

	rows, err := tx.Query(ctx, query, keyword.Value())
	if err != nil {
		log.Error(ctx, errCtxSelectProducts, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxSelectProducts, err)
	}
	defer rows.Close()

	var products []*entities.Product
	for rows.Next() {
		var (
			id           int32
			name         string
			price        int32
			categoryID   int32
			categoryName string
		)
		if err := rows.Scan(&id, &name, &price, &categoryID, &categoryName); err != nil {
			log.Error(ctx, errCtxSelectProducts, zap.Error(err))
			return nil, apperrors.WrapInternal(errCtxSelectProducts, err)
		}

		product, err := productFromRow(id, name, price, categoryID, categoryName)
		if err != nil {
			log.Error(ctx, errCtxProductRow, zap.Error(err))
			return nil, apperrors.WrapInternal(errCtxProductRow, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, errCtxSelectProducts, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxSelectProducts, err)
	}

	return products, nil
}

// Insert сохраняет новый товар и возвращает его с номером,
// присвоенным хранилищем.
func (r *ProductRepository) Insert(ctx context.Context, tx pgx.Tx, product *entities.Product) (*entities.Product, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Insert"))

	query := `
        INSERT INTO product (name, price, category_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `

	var newID int32
	err := tx.QueryRow(ctx, query,
		product.Name().Value(),
		product.Price().Value(),
		product.Category().Identity().Value(),
	).Scan(&newID)
	if err != nil {
		log.Error(ctx, errCtxInsertProduct, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxInsertProduct, err)
	}

	productID, err := values.NewProductID(newID)
	if err != nil {
		log.Error(ctx, errCtxProductRow, zap.Error(err))
		return nil, apperrors.WrapInternal(errCtxProductRow, err)
	}

	registered := entities.NewProduct(productID, product.Name(), product.Price(), product.Category())
	return registered, nil
}

// Exists сообщает, существует ли товар с точно таким названием.
func (r *ProductRepository) Exists(ctx context.Context, tx pgx.Tx, name values.ProductName) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "product"), zap.String("method", "Exists"))

	query := `
        SELECT EXISTS (SELECT 1 FROM product WHERE name = $1)
    `

	var exists bool
	if err := tx.QueryRow(ctx, query, name.Value()).Scan(&exists); err != nil {
		log.Error(ctx, errCtxProductExists, zap.Error(err))
		return false, apperrors.WrapInternal(errCtxProductExists, err)
	}

	return exists, nil
}

// Восстанавливает сущность товара из строки соединения с категорией.
func productFromRow(id int32, name string, price int32, categoryID int32, categoryName string) (*entities.Product, error) {
	category, err := categoryFromRow(categoryID, categoryName)
	if err != nil {
		return nil, err
	}

	productID, err := values.NewProductID(id)
	if err != nil {
		return nil, err
	}
	productName, err := values.NewProductName(name)
	if err != nil {
		return nil, err
	}
	productPrice, err := values.NewProductPrice(price)
	if err != nil {
		return nil, err
	}

	return entities.NewProduct(productID, productName, productPrice, category), nil
}
