package list_activities

import (
	"net/http"

	"github.com/soltours/booking-service/internal/api/handlers"
	"github.com/soltours/booking-service/internal/service/activities/models"
)

type Handler struct {
	service ActivitiesService
	logger  Logger
}

func NewHandler(service ActivitiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities?category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListActivitiesRequest{}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /activities - Failed to list activities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities - Listed %d activities", len(result.Activities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
