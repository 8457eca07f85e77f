package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	createAppointment "github.com/m04kA/BRB-ScheduleService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable     = "выбранный временной слот занят"
	msgProfessionalNotFound = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgSettingsNotFound     = "настройки салона не найдены"
	msgShopClosed           = "салон закрыт в выбранную дату"
	msgOutsideHours         = "слот выходит за рабочие часы салона"
	msgInvalidRecurrence    = "некорректные параметры повторения"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: services=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSettingsNotFound):
			h.logger.Warn("POST /appointments - Shop settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, createAppointment.ErrShopClosed):
			h.logger.Warn("POST /appointments - Shop closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createAppointment.ErrOutsideOperatingHours):
			h.logger.Warn("POST /appointments - Outside operating hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrInvalidRecurrence):
			h.logger.Warn("POST /appointments - Invalid recurrence: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointments created successfully: created=%d, skipped=%d, professional_id=%d",
		result.CreatedCount, result.SkippedCount, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
