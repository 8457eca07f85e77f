package get_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments"
	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod         = "некорректный период, ожидаются startDate и endDate в формате YYYY-MM-DD"
	msgInvalidFilter         = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: date (YYYY-MM-DD), startDate + endDate, professionalId,
// status, includeCanceled - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.GetScheduleRequest{}

	// Фильтр по мастеру (опционально)
	if professionalIDStr := query.Get("professionalId"); professionalIDStr != "" {
		professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid professional ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
			return
		}
		req.ProfessionalID = &professionalID
	}

	// Конкретная дата (опционально)
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	// Период (опционально)
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	if startDateStr != "" || endDateStr != "" {
		startDate, err1 := time.Parse(domain.DateFormat, startDateStr)
		endDate, err2 := time.Parse(domain.DateFormat, endDateStr)
		if err1 != nil || err2 != nil {
			h.logger.Warn("GET /schedule - Invalid period: startDate=%s, endDate=%s", startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.StartDate = &startDate
		req.EndDate = &endDate
	}

	// Фильтр по статусу (опционально)
	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	// Включение отменённых записей (опционально)
	if query.Get("includeCanceled") == "true" {
		req.IncludeCanceled = true
	}

	// Получаем расписание
	schedule, err := h.service.GetSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved successfully: appointments_count=%d",
		len(schedule.Appointments))
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
