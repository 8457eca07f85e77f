package create_appointment

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName     string           // Имя клиента
	ProfessionalID int64            // ID мастера
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала (например, "10:00")
	ServiceIDs     []int64          // Выбранные услуги каталога
	Notes          *string          // Дополнительные заметки (опционально)

	// Recurrence опциональные параметры повторения.
	// Count задаёт количество дополнительных проекций после первой записи
	Recurrence *RecurrenceRequest
}

// RecurrenceRequest параметры повторения записи
type RecurrenceRequest struct {
	Type  string // daily, weekly, biweekly, twenty_days, monthly
	Count int
}

// Response модель ответа с созданными записями
// При повторении создаётся серия: CreatedCount + SkippedCount = Count + 1
type Response struct {
	Appointments []AppointmentResult // Созданные записи серии
	CreatedCount int                 // Количество созданных записей
	SkippedCount int                 // Количество пропущенных проекций
}

// AppointmentResult созданная запись серии
type AppointmentResult struct {
	ID              int64                // ID созданной записи
	ClientName      string               // Имя клиента
	ProfessionalID  int64                // ID мастера
	Date            time.Time            // Дата записи
	StartTime       types.TimeString     // Время начала
	EndTime         types.TimeString     // Время окончания
	DurationMinutes int                  // Суммарная длительность услуг
	Status          string               // Статус записи
	Services        []domain.ServiceItem // Снимок услуг на момент создания
	Notes           *string              // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
