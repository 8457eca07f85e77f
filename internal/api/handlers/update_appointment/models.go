package update_appointment

import (
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	updateAppointment "github.com/m04kA/BRB-ScheduleService/internal/usecase/update_appointment"
	"github.com/m04kA/BRB-ScheduleService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
// Все поля опциональны: отсутствующее поле не меняется
type UpdateAppointmentRequest struct {
	ClientName     *string `json:"clientName,omitempty"`
	ProfessionalID *int64  `json:"professionalId,omitempty"`
	Date           *string `json:"date,omitempty"`      // "2026-01-31"
	StartTime      *string `json:"startTime,omitempty"` // "10:00"
	ServiceIDs     []int64 `json:"serviceIds,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// ServiceItemPayload услуга, зафиксированная в записи
type ServiceItemPayload struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		AppointmentID:  appointmentID,
		ClientName:     r.ClientName,
		ProfessionalID: r.ProfessionalID,
		ServiceIDs:     r.ServiceIDs,
		Notes:          r.Notes,
	}

	// Парсим дату, если указана
	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	// Парсим время, если указано
	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	services := make([]ServiceItemPayload, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = ServiceItemPayload{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Notes:           s.Notes,
		}
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		ClientName:      resp.ClientName,
		ProfessionalID:  resp.ProfessionalID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Services:        services,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
