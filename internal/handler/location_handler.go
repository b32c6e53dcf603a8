package handler

import (
	"net/http"

	"dining-companion/internal/service"

	"github.com/rs/zerolog"
)

// LocationHandler handles dining location HTTP requests.
type LocationHandler struct {
	service service.LocationService
	logger  zerolog.Logger
}

// NewLocationHandler creates a new location handler.
func NewLocationHandler(service service.LocationService, logger zerolog.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger.With().Str("handler", "location").Logger(),
	}
}

// List handles GET /api/locations requests with an optional q search term.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, locations)
}

// GetByID handles GET /api/locations/{id} requests.
func (h *LocationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	loc, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, loc)
}

// Menu handles GET /api/locations/{id}/menu requests with an optional diet filter.
func (h *LocationHandler) Menu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.Menu(r.Context(), r.PathValue("id"), r.URL.Query().Get("diet"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}
