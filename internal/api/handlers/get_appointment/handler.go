package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем запись
	appointment, err := h.service.GetByID(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
