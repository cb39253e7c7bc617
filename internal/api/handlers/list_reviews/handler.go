package list_reviews

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/soltours/booking-service/internal/api/handlers"
)

const (
	msgInvalidActivityID = "некорректный ID активности"
)

type Handler struct {
	service ReviewsService
	logger  Logger
}

func NewHandler(service ReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityID, err := strconv.ParseInt(vars["activityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/reviews - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	result, err := h.service.ListByActivity(r.Context(), activityID)
	if err != nil {
		h.logger.Error("GET /activities/{id}/reviews - Failed to list reviews: activity_id=%d, error=%v", activityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities/{id}/reviews - Listed %d reviews: activity_id=%d", result.ReviewCount, activityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
