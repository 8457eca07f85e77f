package create_appointment

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CreateBatch(ctx context.Context, appointments []*domain.Appointment) ([]*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
}

// ServiceItemRepository интерфейс репозитория каталога услуг
type ServiceItemRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.ServiceItem, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
