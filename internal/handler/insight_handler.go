package handler

import (
	"net/http"
	"strconv"

	"dining-companion/internal/middleware"
	"dining-companion/internal/model"
	"dining-companion/internal/service"

	"github.com/rs/zerolog"
)

// InsightHandler serves the per-user analytics fetched from the backend.
type InsightHandler struct {
	service service.InsightService
	logger  zerolog.Logger
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(service service.InsightService, logger zerolog.Logger) *InsightHandler {
	return &InsightHandler{
		service: service,
		logger:  logger.With().Str("handler", "insight").Logger(),
	}
}

// Recommendations handles GET /api/recommendations requests.
func (h *InsightHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := 0 // service default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidQuery, "limit must be a positive integer", h.logger)
			return
		}
	}

	result, err := h.service.Recommendations(r.Context(), userID, limit)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	if !result.OK() {
		writeOutcomeError(w, r, result.Kind, result.Message(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.RecommendationsResponse{
		Success:         true,
		Recommendations: result.Items,
		Count:           result.Count,
	})
}

// Dislikes handles GET /api/dislikes requests.
func (h *InsightHandler) Dislikes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Dislikes(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	if !result.OK() {
		writeOutcomeError(w, r, result.Kind, result.Message(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.DislikesResponse{
		Success:  true,
		Dislikes: result.Items,
		Count:    result.Count,
	})
}
