package get_cancellation_policy

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
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/policy
// Отдаёт действующую политику отмены активности с учётом иерархии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityID, err := strconv.ParseInt(vars["activityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/policy - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	result, err := h.service.GetForActivityResponse(r.Context(), &activityID)
	if err != nil {
		h.logger.Error("GET /activities/{id}/policy - Failed to get policy: activity_id=%d, error=%v", activityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities/{id}/policy - Policy fetched: activity_id=%d, tiers=%d", activityID, len(result.Tiers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
