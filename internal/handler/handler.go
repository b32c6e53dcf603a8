package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dining-companion/internal/analytics"
	"dining-companion/internal/middleware"
	"dining-companion/internal/model"
	"dining-companion/internal/store"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response carrying the request correlation ID.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.GetRequestID(r.Context())

	logger.Error().
		Str("error", message).
		Str("code", code).
		Int("status", status).
		Str("request_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeDomainError maps service errors onto HTTP responses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeLocationNotFound:
		status = http.StatusNotFound
	case model.ErrCodeInvalidDietaryTag, model.ErrCodeUserRequired, model.ErrCodeInvalidQuery:
		status = http.StatusBadRequest
	}

	writeError(w, r, status, domainErr.Code, domainErr.Message, logger)
}

// writeOutcomeError writes the response for a failed analytics result.
// A cancelled result writes nothing: the caller has already gone away.
func writeOutcomeError(w http.ResponseWriter, r *http.Request, kind analytics.Kind, message string, logger zerolog.Logger) {
	var status int
	var code string

	switch kind {
	case analytics.KindCanceled:
		logger.Debug().
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("request cancelled, discarding analytics result")
		return
	case analytics.KindApplicationFailure:
		status, code = http.StatusBadGateway, model.ErrCodeApplicationFailure
	case analytics.KindTransport:
		status, code = http.StatusServiceUnavailable, model.ErrCodeUpstreamUnavailable
	case analytics.KindHTTPStatus:
		status, code = http.StatusBadGateway, model.ErrCodeUpstreamStatus
	case analytics.KindTunnelInterstitial:
		status, code = http.StatusBadGateway, model.ErrCodeTunnelInterstitial
	case analytics.KindInvalidFormat:
		status, code = http.StatusBadGateway, model.ErrCodeInvalidUpstreamResponse
	default:
		status, code = http.StatusInternalServerError, model.ErrCodeInternalError
	}

	writeError(w, r, status, code, message, logger)
}

// sessionStore returns the session store or writes a 500 when the request
// was not routed through the session middleware.
func sessionStore(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (*store.Store, bool) {
	s, err := store.FromContext(r.Context())
	if err != nil {
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("no session store in request context")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "session not initialised", logger)
		return nil, false
	}
	return s, true
}
