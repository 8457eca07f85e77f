package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments"
	"github.com/m04kA/BRB-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingReason        = "причина отмены обязательна"
	msgNotFound             = "запись не найдена"
	msgCannotCancel         = "запись нельзя отменить в текущем статусе"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Причина отмены обязательна
	if req.CancellationReason == "" {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing cancellation reason: appointment_id=%d", appointmentID)
		handlers.RespondBadRequest(w, msgMissingReason)
		return
	}

	// Отменяем запись
	if err := h.service.Cancel(r.Context(), appointmentID, &req); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
