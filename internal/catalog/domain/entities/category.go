// Package entities содержит доменные сущности каталога.
// Сущность обладает стабильной идентичностью, отделенной от остальных атрибутов.
package entities

import (
	"goshop/internal/catalog/domain/values"
)

// Category представляет категорию товара.
type Category struct {
	id   values.CategoryID
	name values.CategoryName
}

// NewCategory создает категорию из проверенных значений.
func NewCategory(id values.CategoryID, name values.CategoryName) *Category {
	return &Category{id: id, name: name}
}

// Identity возвращает идентификатор категории.
func (c *Category) Identity() values.CategoryID {
	return c.id
}

// SetIdentity заменяет идентификатор категории.
func (c *Category) SetIdentity(id values.CategoryID) {
	c.id = id
}

// IdentityEquals сравнивает идентичность с указанным идентификатором.
func (c *Category) IdentityEquals(id values.CategoryID) bool {
	return c.id.Equals(id)
}

// Name возвращает название категории.
func (c *Category) Name() values.CategoryName {
	return c.name
}
