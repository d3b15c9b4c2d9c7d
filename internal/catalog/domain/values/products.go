package values

import (
	"fmt"

	"goshop/internal/catalog/domain/apperrors"
)

// Ограничения значений товара.
const (
	MinProductPrice = 50
	MaxProductPrice = 10000

	maxProductNameLength = 20
)

// ProductID представляет номер товара. Ноль означает, что хранилище
// еще не присвоило товару ключ.
type ProductID struct {
	value int32
}

// NewProductID создает номер товара, отрицательные значения недопустимы.
func NewProductID(value int32) (ProductID, error) {
	if value < 0 {
		return ProductID{}, apperrors.NewValidation(fmt.Sprintf("invalid product id %d", value))
	}
	return ProductID{value: value}, nil
}

// Value возвращает хранимое значение.
func (p ProductID) Value() int32 {
	return p.value
}

// Equals сравнивает два номера товара по значению.
func (p ProductID) Equals(other ProductID) bool {
	return p.value == other.value
}

// ProductName представляет название товара.
type ProductName struct {
	value string
}

// NewProductName создает название товара: непустое, не длиннее 20 символов.
func NewProductName(value string) (ProductName, error) {
	if value == "" {
		return ProductName{}, apperrors.NewValidation("product name must not be empty")
	}
	if runeLength(value) > maxProductNameLength {
		return ProductName{}, apperrors.NewValidation("product name must be at most 20 characters")
	}
	return ProductName{value: value}, nil
}

// Value возвращает хранимое значение.
func (p ProductName) Value() string {
	return p.value
}

// ProductPrice представляет цену товара в минимальных денежных единицах.
type ProductPrice struct {
	value int32
}

// NewProductPrice создает цену товара в закрытом интервале [50,10000].
func NewProductPrice(value int32) (ProductPrice, error) {
	if value < MinProductPrice || value > MaxProductPrice {
		return ProductPrice{}, apperrors.NewValidation(fmt.Sprintf("invalid product price %d", value))
	}
	return ProductPrice{value: value}, nil
}

// Value возвращает хранимое значение.
func (p ProductPrice) Value() int32 {
	return p.value
}
