package repository

import (
	"context"

	"dining-companion/internal/model"
)

// LocationRepository defines the interface for catalogue data access operations.
type LocationRepository interface {
	// List retrieves every location with its menu, in catalogue order.
	List(ctx context.Context) ([]model.DiningLocation, error)

	// GetByID retrieves a single location by its ID.
	// Returns nil without an error when the location does not exist.
	GetByID(ctx context.Context, id string) (*model.DiningLocation, error)

	// ItemsByIDs retrieves the menu items with the given IDs in catalogue order.
	// Unknown IDs are ignored.
	ItemsByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error)

	// Replace swaps the whole catalogue for locations.
	Replace(ctx context.Context, locations []model.DiningLocation) error
}
