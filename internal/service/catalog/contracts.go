package catalog

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// ServiceItemRepository интерфейс репозитория каталога услуг
type ServiceItemRepository interface {
	List(ctx context.Context) ([]domain.ServiceItem, error)
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	List(ctx context.Context) ([]domain.Professional, error)
	GetByID(ctx context.Context, id int64) (*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
