package appointments

import (
	"context"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Appointment, error)
	Complete(ctx context.Context, id int64, finalPrice float64) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
