package entities

import (
	"goshop/internal/catalog/domain/values"
)

// Product представляет товар каталога. Категория может отсутствовать
// на промежуточных этапах, но ожидается заполненной перед выдачей наружу.
type Product struct {
	id       values.ProductID
	name     values.ProductName
	price    values.ProductPrice
	category *Category
}

// NewProduct создает товар из проверенных значений.
func NewProduct(id values.ProductID, name values.ProductName, price values.ProductPrice, category *Category) *Product {
	return &Product{id: id, name: name, price: price, category: category}
}

// Identity возвращает номер товара.
func (p *Product) Identity() values.ProductID {
	return p.id
}

// SetIdentity заменяет номер товара. Используется после того,
// как хранилище присвоило сгенерированный ключ.
func (p *Product) SetIdentity(id values.ProductID) {
	p.id = id
}

// IdentityEquals сравнивает идентичность с указанным номером.
func (p *Product) IdentityEquals(id values.ProductID) bool {
	return p.id.Equals(id)
}

// Name возвращает название товара.
func (p *Product) Name() values.ProductName {
	return p.name
}

// Price возвращает цену товара.
func (p *Product) Price() values.ProductPrice {
	return p.price
}

// Category возвращает категорию товара, может быть nil.
func (p *Product) Category() *Category {
	return p.category
}

// SetCategory заменяет категорию товара.
func (p *Product) SetCategory(category *Category) {
	p.category = category
}
