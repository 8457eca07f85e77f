package update_appointment

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Request модель запроса на изменение записи
// Поля-указатели опциональны: nil означает "оставить как есть"
type Request struct {
	AppointmentID int64

	ClientName     *string           // Новое имя клиента (опционально)
	ProfessionalID *int64            // Перенос к другому мастеру (опционально)
	Date           *time.Time        // Новая дата (опционально)
	StartTime      *types.TimeString // Новое время начала (опционально)
	ServiceIDs     []int64           // Новый набор услуг (опционально, nil = без изменений)
	Notes          *string           // Новые заметки (опционально)
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID              int64                // ID записи
	ClientName      string               // Имя клиента
	ProfessionalID  int64                // ID мастера
	Date            time.Time            // Дата записи
	StartTime       types.TimeString     // Время начала
	EndTime         types.TimeString     // Время окончания
	DurationMinutes int                  // Суммарная длительность услуг
	Status          string               // Статус записи
	Services        []domain.ServiceItem // Снимок услуг
	Notes           *string              // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
