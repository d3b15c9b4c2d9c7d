package services

import (
	"context"
	"time"
)

// TokenService выпускает и проверяет токены доступа.
// Ключ подписи передается при создании реализации, а не хранится константой.
type TokenService interface {
	// Generate выпускает токен доступа для пользователя.
	Generate(ctx context.Context, userID, userName string) (string, time.Time, error)

	// Validate проверяет токен и возвращает идентификатор пользователя.
	Validate(ctx context.Context, token string) (string, error)
}
