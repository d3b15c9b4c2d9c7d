package postgres

import (
	"goshop/internal/catalog/ports/repositories"
)

// RepositoryFactory создает все репозитории каталога.
type RepositoryFactory struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	userRepo     repositories.UserRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		categoryRepo: NewCategoryRepository(),
		productRepo:  NewProductRepository(),
		userRepo:     NewUserRepository(),
	}
}

// CategoryRepository возвращает репозиторий категорий.
func (f *RepositoryFactory) CategoryRepository() repositories.CategoryRepository {
	return f.categoryRepo
}

// ProductRepository возвращает репозиторий товаров.
func (f *RepositoryFactory) ProductRepository() repositories.ProductRepository {
	return f.productRepo
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}
