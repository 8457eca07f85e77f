package settings

import (
	"context"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
	Update(ctx context.Context, settings *domain.ShopSettings) (*domain.ShopSettings, error)
	UpsertSpecialDay(ctx context.Context, day domain.SpecialDay) error
	DeleteSpecialDay(ctx context.Context, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
