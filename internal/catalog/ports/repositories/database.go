// Package repositories определяет контракты слоя хранения.
// Каждый метод репозитория принимает непрозрачный транзакционный
// дескриптор; границами транзакций владеют доменные сервисы.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Database открывает транзакции над пулом соединений.
// Пул - единственный разделяемый ресурс процесса.
type Database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
