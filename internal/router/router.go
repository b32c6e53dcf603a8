package router

import (
	"net/http"

	"dining-companion/internal/handler"
	"dining-companion/internal/middleware"
	"dining-companion/internal/store"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Location *handler.LocationHandler
	Favorite *handler.FavoriteHandler
	Insight  *handler.InsightHandler
}

// Options configures the middleware chain.
type Options struct {
	// APIKey enables X-API-Key authentication when non-empty.
	APIKey string

	// DefaultUserID is the user assumed when a request has no X-User-ID.
	DefaultUserID string
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, registry *store.Registry, opts Options, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue
	mux.HandleFunc("GET /api/locations", h.Location.List)
	mux.HandleFunc("GET /api/locations/{id}", h.Location.GetByID)
	mux.HandleFunc("GET /api/locations/{id}/menu", h.Location.Menu)

	// Favourites (the only routes that allocate a session store)
	session := middleware.Session(registry, logger)
	mux.Handle("GET /api/favorites", session(http.HandlerFunc(h.Favorite.List)))
	mux.Handle("GET /api/favorites/{itemId}", session(http.HandlerFunc(h.Favorite.Status)))
	mux.Handle("POST /api/favorites/{itemId}/toggle", session(http.HandlerFunc(h.Favorite.Toggle)))

	// Analytics
	mux.HandleFunc("GET /api/recommendations", h.Insight.Recommendations)
	mux.HandleFunc("GET /api/dislikes", h.Insight.Dislikes)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth -> UserID
	var handler http.Handler = mux
	handler = middleware.UserID(opts.DefaultUserID, logger)(handler)
	if opts.APIKey != "" {
		handler = middleware.APIKeyAuth(opts.APIKey, logger)(handler)
	} else {
		logger.Warn().Msg("API_KEY not set, authentication disabled")
	}
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
