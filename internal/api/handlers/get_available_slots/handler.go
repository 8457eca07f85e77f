package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/BRB-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgMissingProfessionalID = "ID мастера обязателен"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingServiceIDs     = "список услуг обязателен"
	msgInvalidServiceIDs     = "некорректный список услуг, ожидается serviceIds=1,2,3"
	msgInvalidExcludeID      = "некорректный ID исключаемой записи"
	msgProfessionalNotFound  = "мастер не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgSettingsNotFound      = "настройки салона не найдены"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: professionalId (required), date (required, YYYY-MM-DD),
// serviceIds (required, comma-separated), excludeAppointmentId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем professionalId из query параметров
	professionalIDStr := query.Get("professionalId")
	if professionalIDStr == "" {
		h.logger.Warn("GET /available-slots - Missing professional ID")
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return
	}

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем serviceIds из query параметров
	serviceIDsStr := query.Get("serviceIds")
	if serviceIDsStr == "" {
		h.logger.Warn("GET /available-slots - Missing service IDs")
		handlers.RespondBadRequest(w, msgMissingServiceIDs)
		return
	}

	// Извлекаем excludeAppointmentId (опционально, для переноса записи)
	var excludeID *int64
	if excludeIDStr := query.Get("excludeAppointmentId"); excludeIDStr != "" {
		id, err := strconv.ParseInt(excludeIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid exclude appointment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeID = &id
	}

	// Формируем запрос к use case (с парсингом даты и списка услуг)
	if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(professionalID, dateStr, serviceIDsStr, excludeID)
	if err != nil {
		h.logger.Warn("GET /available-slots - Failed to parse service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /available-slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /available-slots - Service not found: professional_id=%d, services=%s",
				professionalID, serviceIDsStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrSettingsNotFound):
			h.logger.Warn("GET /available-slots - Shop settings not found")
			handlers.RespondNotFound(w, msgSettingsNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: professional_id=%d, date=%s, error=%v",
				professionalID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: professional_id=%d, date=%s, slots_count=%d",
		professionalID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
