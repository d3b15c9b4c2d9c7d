// Package dto содержит объекты передачи данных и формы границы приложения.
package dto

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"goshop/internal/catalog/domain/entities"
)

// Символ валюты для отображения цены.
const currencySymbol = "¥"

// CategoryDTO представляет категорию на границе приложения.
type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductDTO представляет товар на границе приложения.
// Цена отформатирована как денежный текст.
type ProductDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    string      `json:"price"`
	Category CategoryDTO `json:"category"`
}

// UserDTO представляет пользователя на границе приложения.
type UserDTO struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Password string `json:"password"`
	Mail     string `json:"mail"`
}

// CategoryToDTO преобразует сущность категории в DTO.
func CategoryToDTO(category *entities.Category) CategoryDTO {
	return CategoryDTO{
		ID:   strconv.FormatInt(int64(category.Identity().Value()), 10),
		Name: category.Name().Value(),
	}
}

// CategoriesToDTO преобразует список категорий в список DTO.
func CategoriesToDTO(categories []*entities.Category) []CategoryDTO {
	results := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		results = append(results, CategoryToDTO(category))
	}
	return results
}

// ProductToDTO преобразует сущность товара в DTO.
// Отсутствующая категория отображается пустым DTO категории.
func ProductToDTO(product *entities.Product) ProductDTO {
	var category CategoryDTO
	if product.Category() != nil {
		category = CategoryToDTO(product.Category())
	}
	return ProductDTO{
		ID:       strconv.FormatInt(int64(product.Identity().Value()), 10),
		Name:     product.Name().Value(),
		Price:    FormatPrice(product.Price().Value()),
		Category: category,
	}
}

// ProductsToDTO преобразует список товаров в список DTO.
func ProductsToDTO(products []*entities.Product) []ProductDTO {
	results := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		results = append(results, ProductToDTO(product))
	}
	return results
}

// UserToDTO преобразует сущность пользователя в DTO.
func UserToDTO(user *entities.User) UserDTO {
	return UserDTO{
		UserID:   user.Identity().Value(),
		UserName: user.Name().Value(),
		Password: user.Password().Value(),
		Mail:     user.Mail().Value(),
	}
}

// FormatPrice переводит цену из минимальных денежных единиц в текст
// вида "¥1,000". У иены нет дробной части, поэтому минимальная единица
// совпадает с основной.
func FormatPrice(minor int32) string {
	amount := decimal.NewFromInt32(minor)
	return currencySymbol + groupThousands(amount.StringFixed(0))
}

// Вставляет разделители тысяч в десятичную запись.
func groupThousands(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
