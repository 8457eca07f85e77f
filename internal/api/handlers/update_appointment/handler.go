package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	updateAppointment "github.com/m04kA/BRB-ScheduleService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound             = "запись не найдена"
	msgProfessionalNotFound = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgSettingsNotFound     = "настройки салона не найдены"
	msgCannotUpdate         = "запись нельзя изменить в текущем статусе"
	msgShopClosed           = "салон закрыт в выбранную дату"
	msgOutsideHours         = "слот выходит за рабочие часы салона"
	msgSlotNotAvailable     = "выбранный временной слот занят"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrProfessionalNotFound):
			h.logger.Warn("PUT /appointments/{id} - Professional not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Service not found: appointment_id=%d, services=%v",
				appointmentID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrSettingsNotFound):
			h.logger.Warn("PUT /appointments/{id} - Shop settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, updateAppointment.ErrCannotUpdate):
			h.logger.Warn("PUT /appointments/{id} - Cannot update: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotUpdate)

		case errors.Is(err, updateAppointment.ErrShopClosed):
			h.logger.Warn("PUT /appointments/{id} - Shop closed: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, updateAppointment.ErrOutsideOperatingHours):
			h.logger.Warn("PUT /appointments/{id} - Outside operating hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, updateAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PUT /appointments/{id} - Slot not available: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
