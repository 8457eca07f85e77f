package update_shop_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/service/settings"
	"github.com/m04kA/BRB-ScheduleService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "некорректное окно работы: начало должно быть раньше конца"
	msgNotFound           = "настройки салона не найдены"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateShopSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidTimeRange):
			h.logger.Warn("PUT /settings - Invalid time range")
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("PUT /settings - Shop settings not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated successfully: shop=%s", result.ShopName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
