package service

import (
	"context"

	"dining-companion/internal/analytics"
	"dining-companion/internal/model"
)

// LocationService defines operations over the dining catalogue.
type LocationService interface {
	// List returns the locations matching query; an empty query returns all.
	List(ctx context.Context, query string) ([]model.DiningLocation, error)

	// GetByID retrieves a single location by ID.
	GetByID(ctx context.Context, id string) (*model.DiningLocation, error)

	// Menu returns a location's menu grouped by station, filtered by the
	// dietary tag named in diet (empty for no filter).
	Menu(ctx context.Context, id, diet string) (*model.LocationMenu, error)

	// ItemsByIDs returns the catalogue items with the given IDs.
	ItemsByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error)
}

// InsightService fetches personalised analytics for a user.
// The returned error only reports invalid input; backend outcomes are
// carried by the result.
type InsightService interface {
	// Recommendations fetches up to limit recommendations for userID.
	Recommendations(ctx context.Context, userID string, limit int) (analytics.Result[model.Recommendation], error)

	// Dislikes fetches the foods userID tends to waste.
	Dislikes(ctx context.Context, userID string) (analytics.Result[model.Dislike], error)
}
