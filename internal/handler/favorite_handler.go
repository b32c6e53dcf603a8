package handler

import (
	"net/http"

	"dining-companion/internal/model"
	"dining-companion/internal/service"

	"github.com/rs/zerolog"
)

// FavoriteHandler handles favourite requests against the session store.
type FavoriteHandler struct {
	locations service.LocationService
	logger    zerolog.Logger
}

// NewFavoriteHandler creates a new favourite handler.
func NewFavoriteHandler(locations service.LocationService, logger zerolog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		locations: locations,
		logger:    logger.With().Str("handler", "favorite").Logger(),
	}
}

// List handles GET /api/favorites requests. Favourites that are no longer in
// the catalogue are left out.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, h.logger)
	if !ok {
		return
	}

	items, err := h.locations.ItemsByIDs(r.Context(), s.Favorites())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.FavoritesResponse{
		UserID: s.UserID(),
		Items:  items,
		Count:  len(items),
	})
}

// Status handles GET /api/favorites/{itemId} requests.
func (h *FavoriteHandler) Status(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, h.logger)
	if !ok {
		return
	}

	itemID := r.PathValue("itemId")
	writeJSON(w, http.StatusOK, model.FavoriteStatus{ItemID: itemID, Favorite: s.IsFavorite(itemID)})
}

// Toggle handles POST /api/favorites/{itemId}/toggle requests.
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, h.logger)
	if !ok {
		return
	}

	itemID := r.PathValue("itemId")
	favorite := s.ToggleFavorite(itemID)

	h.logger.Info().
		Str("user_id", s.UserID()).
		Str("item_id", itemID).
		Bool("favorite", favorite).
		Msg("favourite toggled")

	writeJSON(w, http.StatusOK, model.FavoriteStatus{ItemID: itemID, Favorite: favorite})
}
