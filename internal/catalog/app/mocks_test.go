package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/internal/catalog/ports/repositories"
	"goshop/pkg/logger"
)

// testContext создает контекст с тестовым логгером.
func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) All(ctx context.Context, db repositories.Database) ([]*entities.Category, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *mockCategoryService) ByID(ctx context.Context, db repositories.Database, id values.CategoryID) (*entities.Category, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) ByKeyword(ctx context.Context, db repositories.Database, keyword values.ProductName) ([]*entities.Product, error) {
	args := m.Called(ctx, db, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *mockProductService) Register(ctx context.Context, db repositories.Database, product *entities.Product) (*entities.Product, error) {
	args := m.Called(ctx, db, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductService) Exists(ctx context.Context, db repositories.Database, name values.ProductName) error {
	args := m.Called(ctx, db, name)
	return args.Error(0)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, db repositories.Database, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, db, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserService) Authenticate(ctx context.Context, db repositories.Database, candidate *entities.User) (*entities.User, error) {
	args := m.Called(ctx, db, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// mockDatabase - заглушка источника транзакций; прикладной слой передает
// его доменным сервисам не открывая транзакций сам.
type mockDatabase struct {
	repositories.Database
}

// mustCategory создает категорию для теста.
func mustCategory(t *testing.T, id int32, name string) *entities.Category {
	t.Helper()

	categoryID, err := values.NewCategoryID(id)
	require.NoError(t, err)
	categoryName, err := values.NewCategoryName(name)
	require.NoError(t, err)

	return entities.NewCategory(categoryID, categoryName)
}

// mustProduct создает товар для теста.
func mustProduct(t *testing.T, id int32, name string, price int32, category *entities.Category) *entities.Product {
	t.Helper()

	productID, err := values.NewProductID(id)
	require.NoError(t, err)
	productName, err := values.NewProductName(name)
	require.NoError(t, err)
	productPrice, err := values.NewProductPrice(price)
	require.NoError(t, err)

	return entities.NewProduct(productID, productName, productPrice, category)
}

// mustUser восстанавливает сохраненного пользователя для теста.
func mustUser(t *testing.T, id, name, password, mail string) *entities.User {
	t.Helper()

	userID, err := values.NewUserID(id)
	require.NoError(t, err)
	userName, err := values.NewUserName(name)
	require.NoError(t, err)
	userPassword, err := values.NewPassword(password)
	require.NoError(t, err)
	userMail, err := values.NewMail(mail)
	require.NoError(t, err)

	return entities.RebuildUser(userID, userName, userPassword, userMail)
}
