package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpServer "goshop/internal/catalog/adapters/http"
	"goshop/internal/catalog/app/dto"
	"goshop/internal/catalog/domain/apperrors"
	"goshop/internal/catalog/ports/repositories"
	"goshop/pkg/logger"
)

type mockProductSearchUseCase struct {
	mock.Mock
}

func (m *mockProductSearchUseCase) Search(ctx context.Context, db repositories.Database, form *dto.ProductSearchForm) ([]dto.ProductDTO, error) {
	args := m.Called(ctx, db, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductDTO), args.Error(1)
}

type mockProductRegisterUseCase struct {
	mock.Mock
}

func (m *mockProductRegisterUseCase) Categories(ctx context.Context, db repositories.Database) ([]dto.CategoryDTO, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategoryDTO), args.Error(1)
}

func (m *mockProductRegisterUseCase) Execute(ctx context.Context, db repositories.Database, form *dto.ProductRegisterForm) (*dto.ProductDTO, error) {
	args := m.Called(ctx, db, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductDTO), args.Error(1)
}

type mockAuthenticateUseCase struct {
	mock.Mock
}

func (m *mockAuthenticateUseCase) Execute(ctx context.Context, db repositories.Database, form *dto.LoginForm) (*dto.UserDTO, error) {
	args := m.Called(ctx, db, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserDTO), args.Error(1)
}

type mockUserRegisterUseCase struct {
	mock.Mock
}

func (m *mockUserRegisterUseCase) Execute(ctx context.Context, db repositories.Database, form *dto.UserRegisterForm) (*dto.UserDTO, error) {
	args := m.Called(ctx, db, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserDTO), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(ctx context.Context, userID, userName string) (string, time.Time, error) {
	args := m.Called(ctx, userID, userName)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Validate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type mockDatabase struct {
	repositories.Database
}

type testServer struct {
	app             *fiber.App
	productSearch   *mockProductSearchUseCase
	productRegister *mockProductRegisterUseCase
	authenticate    *mockAuthenticateUseCase
	userRegister    *mockUserRegisterUseCase
	tokenService    *mockTokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "error")
	require.NoError(t, err)
	logger.SetGlobalLogger(testLogger)

	s := &testServer{
		app:             fiber.New(),
		productSearch:   &mockProductSearchUseCase{},
		productRegister: &mockProductRegisterUseCase{},
		authenticate:    &mockAuthenticateUseCase{},
		userRegister:    &mockUserRegisterUseCase{},
		tokenService:    &mockTokenService{},
	}

	httpServer.SetupRouter(s.app, &mockDatabase{},
		s.productSearch, s.productRegister,
		s.authenticate, s.userRegister,
		s.tokenService)

	return s
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&result))
	return result
}

func TestRouterNotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/unknown", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSearchRoute(t *testing.T) {
	t.Run("успешный поиск возвращает товары", func(t *testing.T) {
		s := newTestServer(t)

		found := []dto.ProductDTO{
			{ID: "1", Name: "notebook", Price: "¥300", Category: dto.CategoryDTO{ID: "1", Name: "stationery"}},
		}
		s.productSearch.On("Search", mock.Anything, mock.Anything, mock.MatchedBy(func(f *dto.ProductSearchForm) bool {
			return f.Keyword == "note"
		})).Return(found, nil).Once()

		req := httptest.NewRequest("GET", "/api/v1/products/search?keyword=note", nil)
		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Len(t, body["products"], 1)

		s.productSearch.AssertExpectations(t)
	})

	t.Run("пустое ключевое слово дает 400 с ошибками полей", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest("GET", "/api/v1/products/search", nil)
		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Contains(t, body["fields"], "keyword")

		s.productSearch.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("отсутствие результата дает 404", func(t *testing.T) {
		s := newTestServer(t)

		searchErr := apperrors.NewSearch("no product contains keyword pen")
		s.productSearch.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, searchErr).Once()

		req := httptest.NewRequest("GET", "/api/v1/products/search?keyword=pen", nil)
		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "no product contains keyword pen", body["error"])
	})

	t.Run("внутренняя ошибка дает 500 без деталей", func(t *testing.T) {
		s := newTestServer(t)

		internalErr := apperrors.WrapInternal("querying products", assert.AnError)
		s.productSearch.On("Search", mock.Anything, mock.Anything, mock.Anything).Return(nil, internalErr).Once()

		req := httptest.NewRequest("GET", "/api/v1/products/search?keyword=pen", nil)
		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "internal error", body["error"])
		assert.NotContains(t, body["error"], "querying products")
	})
}

func TestCategoriesRoute(t *testing.T) {
	s := newTestServer(t)

	stored := []dto.CategoryDTO{
		{ID: "1", Name: "stationery"},
		{ID: "2", Name: "sundries"},
	}
	s.productRegister.On("Categories", mock.Anything, mock.Anything).Return(stored, nil).Once()

	req := httptest.NewRequest("GET", "/api/v1/categories", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Len(t, body["categories"], 2)

	s.productRegister.AssertExpectations(t)
}

func TestProductRegisterRoute(t *testing.T) {
	validBody := func() []byte {
		payload, _ := json.Marshal(map[string]any{
			"name":        "notebook",
			"price":       300,
			"category_id": 1,
		})
		return payload
	}

	t.Run("без токена доступ запрещен", func(t *testing.T) {
		s := newTestServer(t)

		req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		s.productRegister.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("с корректным токеном товар регистрируется", func(t *testing.T) {
		s := newTestServer(t)

		s.tokenService.On("Validate", mock.Anything, "valid-token").Return("user-1", nil).Once()

		registered := &dto.ProductDTO{ID: "15", Name: "notebook", Price: "¥300", Category: dto.CategoryDTO{ID: "1", Name: "stationery"}}
		s.productRegister.On("Execute", mock.Anything, mock.Anything, mock.MatchedBy(func(f *dto.ProductRegisterForm) bool {
			return f.Name == "notebook" && f.Price != nil && *f.Price == 300
		})).Return(registered, nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer valid-token")

		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		s.tokenService.AssertExpectations(t)
		s.productRegister.AssertExpectations(t)
	})

	t.Run("дубликат названия дает 409", func(t *testing.T) {
		s := newTestServer(t)

		s.tokenService.On("Validate", mock.Anything, "valid-token").Return("user-1", nil).Once()

		duplicateErr := apperrors.NewRegister("notebook is already registered")
		s.productRegister.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil, duplicateErr).Once()

		req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewReader(validBody()))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer valid-token")

		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "notebook is already registered", body["error"])
	})
}

func TestLoginRoute(t *testing.T) {
	loginBody := func() []byte {
		payload, _ := json.Marshal(map[string]string{
			"name":     "testuser",
			"password": "secret123",
		})
		return payload
	}

	t.Run("успешный вход выпускает токен", func(t *testing.T) {
		s := newTestServer(t)

		user := &dto.UserDTO{UserID: "user-1", UserName: "testuser"}
		s.authenticate.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(user, nil).Once()

		expiresAt := time.Now().Add(15 * time.Minute)
		s.tokenService.On("Generate", mock.Anything, "user-1", "testuser").
			Return("issued-token", expiresAt, nil).Once()

		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(loginBody()))
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "issued-token", body["access_token"])
		assert.Equal(t, "Bearer", body["token_type"])

		s.authenticate.AssertExpectations(t)
		s.tokenService.AssertExpectations(t)
	})

	t.Run("причина отказа аутентификации не раскрывается", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
		}{
			{name: "неизвестное имя", err: apperrors.NewAuthenticate("unknown username")},
			{name: "неверный пароль", err: apperrors.NewAuthenticate("incorrect password")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newTestServer(t)

				s.authenticate.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

				req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(loginBody()))
				req.Header.Set("Content-Type", "application/json")

				resp, err := s.app.Test(req)
				require.NoError(t, err)

				assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
				body := decodeBody(t, resp.Body)
				assert.Equal(t, "invalid username or password", body["error"])
			})
		}
	})

	t.Run("короткие учетные данные дают 400", func(t *testing.T) {
		s := newTestServer(t)

		payload, _ := json.Marshal(map[string]string{"name": "user", "password": "short"})
		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		s.authenticate.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserRegisterRoute(t *testing.T) {
	s := newTestServer(t)

	user := &dto.UserDTO{UserID: "user-1", UserName: "testuser", Mail: "test@example.com"}
	s.userRegister.On("Execute", mock.Anything, mock.Anything, mock.MatchedBy(func(f *dto.UserRegisterForm) bool {
		return f.Name == "testuser" && f.Mail == "test@example.com"
	})).Return(user, nil).Once()

	payload, _ := json.Marshal(map[string]string{
		"name":     "testuser",
		"password": "secret123",
		"mail":     "test@example.com",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	s.userRegister.AssertExpectations(t)
}
