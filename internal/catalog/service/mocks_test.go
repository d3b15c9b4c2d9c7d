package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/domain/values"
	"goshop/pkg/logger"
)

// testContext создает контекст с тестовым логгером.
func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return logger.NewContext(context.Background(), testLogger)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) SelectAll(ctx context.Context, tx pgx.Tx) ([]*entities.Category, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *mockCategoryRepository) SelectByID(ctx context.Context, tx pgx.Tx, id values.CategoryID) (*entities.Category, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) SelectByNameLike(ctx context.Context, tx pgx.Tx, keyword values.ProductName) ([]*entities.Product, error) {
	args := m.Called(ctx, tx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *mockProductRepository) Insert(ctx context.Context, tx pgx.Tx, product *entities.Product) (*entities.Product, error) {
	args := m.Called(ctx, tx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepository) Exists(ctx context.Context, tx pgx.Tx, name values.ProductName) (bool, error) {
	args := m.Called(ctx, tx, name)
	return args.Bool(0), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) SelectByName(ctx context.Context, tx pgx.Tx, name values.UserName) (*entities.User, error) {
	args := m.Called(ctx, tx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Insert(ctx context.Context, tx pgx.Tx, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, tx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
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

// mustUser создает сохраненного пользователя для теста.
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
