package service_test

import (
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goshop/internal/catalog/domain/apperrors"
	"goshop/internal/catalog/service"
)

func TestUserServiceRegister(t *testing.T) {
	ctx := testContext(t)

	t.Run("сохраняет пользователя и фиксирует транзакцию", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectBegin()
		db.ExpectCommit()

		user := mustUser(t, "user-1", "testuser", "digest", "test@example.com")

		repo := &mockUserRepository{}
		repo.On("Insert", mock.Anything, mock.Anything, user).Return(user, nil).Once()

		svc := service.NewUserService(repo)

		registered, err := svc.Register(ctx, db, user)

		require.NoError(t, err)
		assert.True(t, registered.IdentityEquals(user.Identity()))

		repo.AssertExpectations(t)
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("отказ вставки откатывает транзакцию", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectBegin()
		db.ExpectRollback()

		user := mustUser(t, "user-1", "testuser", "digest", "test@example.com")
		storageErr := apperrors.WrapInternal("inserting user", errors.New("unique violation"))

		repo := &mockUserRepository{}
		repo.On("Insert", mock.Anything, mock.Anything, user).Return(nil, storageErr).Once()

		svc := service.NewUserService(repo)

		registered, err := svc.Register(ctx, db, user)

		assert.Nil(t, registered)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInternal))

		repo.AssertExpectations(t)
		require.NoError(t, db.ExpectationsWereMet())
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	ctx := testContext(t)

	t.Run("совпадение имени и дайджеста возвращает сохраненного пользователя", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectBegin()
		db.ExpectRollback()

		stored := mustUser(t, "user-1", "testuser", "digest", "test@example.com")
		candidate := mustUser(t, "candidate", "testuser", "digest", "dummy")

		repo := &mockUserRepository{}
		repo.On("SelectByName", mock.Anything, mock.Anything, candidate.Name()).Return(stored, nil).Once()

		svc := service.NewUserService(repo)

		authenticated, err := svc.Authenticate(ctx, db, candidate)

		require.NoError(t, err)
		assert.True(t, authenticated.IdentityEquals(stored.Identity()))
		assert.Equal(t, "test@example.com", authenticated.Mail().Value())

		repo.AssertExpectations(t)
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("неизвестное имя - ошибка аутентификации", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectBegin()
		db.ExpectRollback()

		candidate := mustUser(t, "candidate", "stranger", "digest", "dummy")

		repo := &mockUserRepository{}
		repo.On("SelectByName", mock.Anything, mock.Anything, candidate.Name()).Return(nil, nil).Once()

		svc := service.NewUserService(repo)

		authenticated, err := svc.Authenticate(ctx, db, candidate)

		assert.Nil(t, authenticated)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthenticate))
		assert.Equal(t, "unknown username", err.Error())

		repo.AssertExpectations(t)
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("несовпадение дайджеста - ошибка аутентификации", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectBegin()
		db.ExpectRollback()

		stored := mustUser(t, "user-1", "testuser", "digest", "test@example.com")
		candidate := mustUser(t, "candidate", "testuser", "wrong-digest", "dummy")

		repo := &mockUserRepository{}
		repo.On("SelectByName", mock.Anything, mock.Anything, candidate.Name()).Return(stored, nil).Once()

		svc := service.NewUserService(repo)

		authenticated, err := svc.Authenticate(ctx, db, candidate)

		assert.Nil(t, authenticated)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthenticate))
		assert.Equal(t, "incorrect password", err.Error())

		repo.AssertExpectations(t)
		require.NoError(t, db.ExpectationsWereMet())
	})

	t.Run("отказ хранилища передается наверх", func(t *testing.T) {
		db, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer db.Close()

		db.ExpectBegin()
		db.ExpectRollback()

		candidate := mustUser(t, "candidate", "testuser", "digest", "dummy")
		storageErr := apperrors.WrapInternal("querying user", errors.New("broken pipe"))

		repo := &mockUserRepository{}
		repo.On("SelectByName", mock.Anything, mock.Anything, candidate.Name()).Return(nil, storageErr).Once()

		svc := service.NewUserService(repo)

		authenticated, err := svc.Authenticate(ctx, db, candidate)

		assert.Nil(t, authenticated)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInternal))

		repo.AssertExpectations(t)
		require.NoError(t, db.ExpectationsWereMet())
	})
}
