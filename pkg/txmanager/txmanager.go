package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
)

// TxBeginner интерфейс источника транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакций,
// прокидывая транзакцию в контекст для репозиториев
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn внутри транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn внутри сериализуемой транзакции
// Используется для проверки доступности слота с последующей вставкой
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn внутри read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback after error %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}
