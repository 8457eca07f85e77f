package models

import (
	"errors"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// CompleteAppointmentRequest запрос на завершение записи.
// FinalPrice опциональна: если не указана, фиксируется суммарная цена услуг
type CompleteAppointmentRequest struct {
	FinalPrice *float64 `json:"finalPrice,omitempty"`
}

// GetScheduleRequest запрос расписания с гибкой фильтрацией
type GetScheduleRequest struct {
	ProfessionalID  *int64     `json:"professionalId,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeCanceled bool       `json:"includeCanceled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetScheduleRequest) ToDomainFilter() (domain.ScheduleFilter, error) {
	filter := domain.ScheduleFilter{
		ProfessionalID:  r.ProfessionalID,
		Date:            r.Date,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeCanceled: r.IncludeCanceled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ServiceItemResponse услуга, зафиксированная в записи на момент бронирования
type ServiceItemResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID             int64                 `json:"id"`
	ClientName     string                `json:"clientName"`
	ProfessionalID int64                 `json:"professionalId"`
	Date           string                `json:"date"`      // "2026-01-31"
	StartTime      string                `json:"startTime"` // "10:00"
	EndTime        string                `json:"endTime"`   // "11:30"
	Status         string                `json:"status"`
	Services       []ServiceItemResponse `json:"services"`

	TotalDurationMinutes int     `json:"totalDurationMinutes"`
	TotalPrice           float64 `json:"totalPrice"`

	FinalPrice         *float64 `json:"finalPrice,omitempty"`
	Notes              *string  `json:"notes,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleResponse ответ со списком записей
type ScheduleResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	services := make([]ServiceItemResponse, len(a.Services))
	for i, s := range a.Services {
		services[i] = ServiceItemResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Notes:           s.Notes,
		}
	}

	resp := &AppointmentResponse{
		ID:                   a.ID,
		ClientName:           a.ClientName,
		ProfessionalID:       a.ProfessionalID,
		Date:                 a.Date.Format(domain.DateFormat),
		StartTime:            a.StartTime.String(),
		Status:               string(a.Status),
		Services:             services,
		TotalDurationMinutes: a.TotalDurationMinutes(),
		TotalPrice:           a.TotalPrice(),
		FinalPrice:           a.FinalPrice,
		Notes:                a.Notes,
		CancellationReason:   a.CancellationReason,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	// Время окончания вычисляется из суммарной длительности услуг
	if end, err := a.StartTime.AddMinutes(a.TotalDurationMinutes()); err == nil {
		resp.EndTime = end.String()
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *ScheduleResponse {
	if appts == nil {
		return &ScheduleResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &ScheduleResponse{
		Appointments: make([]AppointmentResponse, len(appts)),
	}

	for i, appt := range appts {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments[i] = *apptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusPending,
		domain.StatusCompleted,
		domain.StatusCanceled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
