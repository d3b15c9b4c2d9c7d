// Package values содержит объекты-значения каталога.
// Каждый объект проверяет свои инварианты при создании и после этого неизменяем.
package values

import (
	"fmt"

	"goshop/internal/catalog/domain/apperrors"
)

// Границы закрытого набора категорий.
const (
	MinCategoryID = 1
	MaxCategoryID = 3

	maxCategoryNameLength = 20
)

// CategoryID представляет номер категории из закрытого набора {1,2,3}.
type CategoryID struct {
	value int32
}

// NewCategoryID создает номер категории, проверяя принадлежность закрытому набору.
func NewCategoryID(value int32) (CategoryID, error) {
	if value < MinCategoryID || value > MaxCategoryID {
		return CategoryID{}, apperrors.NewValidation(fmt.Sprintf("invalid category id %d", value))
	}
	return CategoryID{value: value}, nil
}

// Value возвращает хранимое значение.
func (c CategoryID) Value() int32 {
	return c.value
}

// Equals сравнивает два номера категории по значению.
func (c CategoryID) Equals(other CategoryID) bool {
	return c.value == other.value
}

// CategoryName представляет название категории.
type CategoryName struct {
	value string
}

// NewCategoryName создает название категории: непустое, не длиннее 20 символов.
func NewCategoryName(value string) (CategoryName, error) {
	if value == "" {
		return CategoryName{}, apperrors.NewValidation("category name must not be empty")
	}
	if runeLength(value) > maxCategoryNameLength {
		return CategoryName{}, apperrors.NewValidation("category name must be at most 20 characters")
	}
	return CategoryName{value: value}, nil
}

// Value возвращает хранимое значение.
func (c CategoryName) Value() string {
	return c.value
}

// Длина строки в символах, не в байтах.
func runeLength(s string) int {
	return len([]rune(s))
}
