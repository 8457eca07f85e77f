package create_appointment

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	createAppointment "github.com/m04kA/BRB-ScheduleService/internal/usecase/create_appointment"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName     string             `json:"clientName"`
	ProfessionalID int64              `json:"professionalId"`
	Date           string             `json:"date"`      // "2026-01-31"
	StartTime      string             `json:"startTime"` // "10:00"
	ServiceIDs     []int64            `json:"serviceIds"`
	Notes          *string            `json:"notes,omitempty"`
	Recurrence     *RecurrencePayload `json:"recurrence,omitempty"`
}

// RecurrencePayload параметры повторения записи
type RecurrencePayload struct {
	Type  string `json:"type"` // daily, weekly, biweekly, twenty_days, monthly
	Count int    `json:"count"`
}

// ServiceItemPayload услуга, зафиксированная в записи
type ServiceItemPayload struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentPayload созданная запись серии
type AppointmentPayload struct {
	ID              int64                `json:"id"`
	ClientName      string               `json:"clientName"`
	ProfessionalID  int64                `json:"professionalId"`
	Date            string               `json:"date"`
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	DurationMinutes int                  `json:"durationMinutes"`
	Status          string               `json:"status"`
	Services        []ServiceItemPayload `json:"services"`
	Notes           *string              `json:"notes,omitempty"`
	CreatedAt       string               `json:"createdAt"`
	UpdatedAt       string               `json:"updatedAt"`
}

// CreateAppointmentResponse HTTP response model
// При повторении возвращается вся созданная серия
type CreateAppointmentResponse struct {
	Appointments []AppointmentPayload `json:"appointments"`
	CreatedCount int                  `json:"createdCount"`
	SkippedCount int                  `json:"skippedCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		ClientName:     r.ClientName,
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		StartTime:      startTime,
		ServiceIDs:     r.ServiceIDs,
		Notes:          r.Notes,
	}

	if r.Recurrence != nil {
		req.Recurrence = &createAppointment.RecurrenceRequest{
			Type:  r.Recurrence.Type,
			Count: r.Recurrence.Count,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	appointments := make([]AppointmentPayload, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		services := make([]ServiceItemPayload, len(appt.Services))
		for j, s := range appt.Services {
			services[j] = ServiceItemPayload{
				ID:              s.ID,
				Name:            s.Name,
				Price:           s.Price,
				DurationMinutes: s.DurationMinutes,
				Notes:           s.Notes,
			}
		}

		appointments[i] = AppointmentPayload{
			ID:              appt.ID,
			ClientName:      appt.ClientName,
			ProfessionalID:  appt.ProfessionalID,
			Date:            appt.Date.Format(domain.DateFormat),
			StartTime:       appt.StartTime.String(),
			EndTime:         appt.EndTime.String(),
			DurationMinutes: appt.DurationMinutes,
			Status:          appt.Status,
			Services:        services,
			Notes:           appt.Notes,
			CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
		}
	}

	return &CreateAppointmentResponse{
		Appointments: appointments,
		CreatedCount: resp.CreatedCount,
		SkippedCount: resp.SkippedCount,
	}
}
