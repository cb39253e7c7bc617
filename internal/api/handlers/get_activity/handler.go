package get_activity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soltours/booking-service/internal/api/handlers"
	"github.com/soltours/booking-service/internal/service/activities"
)

const (
	msgMissingSlug = "отсутствует slug активности"
	msgNotFound    = "активность не найдена"
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

// Handle GET /api/v1/activities/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /activities/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{slug} - Activity not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /activities/{slug} - Failed to get activity: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /activities/{slug} - Activity fetched: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}
