package get_available_slots

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID мастера
	Date           time.Time // Дата для получения слотов (без времени)
	ServiceIDs     []int64   // Выбранные услуги, определяют длительность слота

	// ExcludeAppointmentID исключает запись из подсчёта занятости.
	// Используется при переносе существующей записи, чтобы она не
	// конфликтовала сама с собой
	ExcludeAppointmentID *int64
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ProfessionalID  int64     // ID мастера
	IsOpen          bool      // Открыт ли салон в эту дату
	DurationMinutes int       // Суммарная длительность выбранных услуг
	Slots           []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время окончания слота
}
