package list_professionals

import (
	"net/http"

	"github.com/m04kA/BRB-ScheduleService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.service.ListProfessionals(r.Context())
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals - Professionals retrieved successfully: count=%d",
		len(professionals.Professionals))
	handlers.RespondJSON(w, http.StatusOK, professionals)
}
