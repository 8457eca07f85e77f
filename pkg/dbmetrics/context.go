package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории достают её через GetExecutor и выполняют запросы внутри транзакции
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она там есть,
// иначе переданный по умолчанию executor
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
