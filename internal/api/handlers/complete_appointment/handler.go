package complete_appointment

import (
	"errors"
	"io"
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
	msgNotFound             = "запись не найдена"
	msgCannotComplete       = "запись нельзя завершить в текущем статусе"
	msgInvalidPrice         = "некорректная итоговая цена"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/complete
// Тело опционально: без finalPrice фиксируется суммарная цена услуг записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/complete - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Тело запроса опционально
	var req models.CompleteAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /appointments/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Завершаем запись
	if err := h.service.Complete(r.Context(), appointmentID, &req); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/complete - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotComplete):
			h.logger.Warn("PATCH /appointments/{id}/complete - Cannot complete: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotComplete)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/complete - Invalid price: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		default:
			h.logger.Error("PATCH /appointments/{id}/complete - Failed to complete appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/complete - Appointment completed successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
