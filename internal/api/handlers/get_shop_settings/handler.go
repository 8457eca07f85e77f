package get_shop_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
	"github.com/m04kA/BRB-ScheduleService/internal/service/settings"
)

const (
	msgNotFound = "настройки салона не найдены"
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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopSettings, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("GET /settings - Shop settings not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /settings - Failed to get settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings - Settings retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, shopSettings)
}
