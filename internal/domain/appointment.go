package domain

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment represents a client appointment in the barbershop
type Appointment struct {
	ID             int64
	ClientName     string
	ProfessionalID int64
	Date           time.Time // Дата записи (без времени)
	StartTime      types.TimeString
	Status         AppointmentStatus

	// Denormalized service data for history: услуги копируются в запись
	// на момент бронирования, последующее изменение каталога её не трогает
	Services []ServiceItem

	FinalPrice         *float64 // Фиксируется при завершении
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalDurationMinutes returns the summed duration of all attached services
func (a *Appointment) TotalDurationMinutes() int {
	total := 0
	for _, s := range a.Services {
		total += s.DurationMinutes
	}
	return total
}

// TotalPrice returns the summed catalog price of all attached services
func (a *Appointment) TotalPrice() float64 {
	total := 0.0
	for _, s := range a.Services {
		total += s.Price
	}
	return total
}

// IsActive returns true if the appointment occupies its time slot.
// Pending and completed appointments both occupy; only canceled ones free the slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCanceled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending
}

// CanBeCompleted returns true if the appointment can be completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusPending
}

// CanBeUpdated returns true if the appointment can still be rescheduled
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusPending
}

// Interval returns the half-open time interval [StartTime, StartTime+duration)
// occupied by the appointment
func (a *Appointment) Interval() (TimeInterval, error) {
	end, err := a.StartTime.AddMinutes(a.TotalDurationMinutes())
	if err != nil {
		return TimeInterval{}, err
	}
	return TimeInterval{Start: a.StartTime, End: end}, nil
}

// ScheduleFilter фильтр для выборки записей
type ScheduleFilter struct {
	ProfessionalID  *int64             // Фильтр по мастеру (опционально)
	Date            *time.Time         // Конкретная дата (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCanceled bool               // Включать ли отменённые записи
}
