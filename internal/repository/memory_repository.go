package repository

import (
	"context"
	"fmt"
	"sync"

	"dining-companion/internal/catalog"
	"dining-companion/internal/model"

	"github.com/rs/zerolog"
)

// memoryRepository implements LocationRepository over an in-memory catalogue.
type memoryRepository struct {
	mu        sync.RWMutex
	locations []model.DiningLocation
	logger    zerolog.Logger
}

// NewMemoryRepository creates a repository serving locations from memory.
func NewMemoryRepository(locations []model.DiningLocation, logger zerolog.Logger) LocationRepository {
	return &memoryRepository{
		locations: locations,
		logger:    logger.With().Str("repository", "location-memory").Logger(),
	}
}

func (r *memoryRepository) List(ctx context.Context) ([]model.DiningLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.DiningLocation, len(r.locations))
	copy(out, r.locations)
	return out, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*model.DiningLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := catalog.Find(r.locations, id)
	if !ok {
		r.logger.Debug().Str("location_id", id).Msg("location not found")
		return nil, nil
	}

	found := *loc
	return &found, nil
}

func (r *memoryRepository) ItemsByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return catalog.ItemsByIDs(r.locations, ids), nil
}

func (r *memoryRepository) Replace(ctx context.Context, locations []model.DiningLocation) error {
	if err := catalog.Validate(locations); err != nil {
		return fmt.Errorf("refusing to replace catalogue: %w", err)
	}

	r.mu.Lock()
	r.locations = locations
	r.mu.Unlock()

	r.logger.Info().Int("locations", len(locations)).Msg("catalogue replaced")
	return nil
}
