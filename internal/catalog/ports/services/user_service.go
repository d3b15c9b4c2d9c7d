package services

import (
	"context"

	"goshop/internal/catalog/domain/entities"
	"goshop/internal/catalog/ports/repositories"
)

// UserService определяет бизнес-операции над пользователями.
type UserService interface {
	// Register сохраняет нового пользователя.
	Register(ctx context.Context, db repositories.Database, user *entities.User) (*entities.User, error)

	// Authenticate сверяет кандидата с сохраненным пользователем.
	// Кандидат уже несет хешированный пароль; сравнение идет по дайджестам.
	Authenticate(ctx context.Context, db repositories.Database, candidate *entities.User) (*entities.User, error)
}
