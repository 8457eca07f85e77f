package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/BRB-ScheduleService/pkg/dbmetrics"
)

// TransactionManager вариант transaction manager поверх чистого *sql.DB
// Используется, когда метрики выключены и БД не обёрнута в dbmetrics.DB
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает transaction manager над *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn внутри транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn внутри сериализуемой транзакции
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
		return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
	}

	wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}
	txCtx := dbmetrics.WithTx(ctx, wrapped)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback after error %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: commit transaction: %w", err)
	}

	return nil
}
