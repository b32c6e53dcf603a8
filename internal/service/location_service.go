package service

import (
	"context"
	"fmt"

	"dining-companion/internal/catalog"
	"dining-companion/internal/model"
	"dining-companion/internal/repository"

	"github.com/rs/zerolog"
)

// locationService implements LocationService.
type locationService struct {
	locationRepo repository.LocationRepository
	logger       zerolog.Logger
}

// NewLocationService creates a new location service.
func NewLocationService(locationRepo repository.LocationRepository, logger zerolog.Logger) LocationService {
	return &locationService{
		locationRepo: locationRepo,
		logger:       logger.With().Str("service", "location").Logger(),
	}
}

// List returns the locations matching query.
func (s *locationService) List(ctx context.Context, query string) ([]model.DiningLocation, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list locations")
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	matched := catalog.Search(locations, query)

	s.logger.Debug().
		Str("query", query).
		Int("total", len(locations)).
		Int("matched", len(matched)).
		Msg("searched locations")

	return matched, nil
}

// GetByID retrieves a single location by ID.
func (s *locationService) GetByID(ctx context.Context, id string) (*model.DiningLocation, error) {
	if id == "" {
		s.logger.Warn().Msg("location ID is empty")
		return nil, model.ErrLocationNotFound
	}

	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("location_id", id).Msg("failed to get location by ID")
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	if loc == nil {
		s.logger.Debug().Str("location_id", id).Msg("location not found")
		return nil, model.ErrLocationNotFound
	}

	return loc, nil
}

// Menu returns a location's grouped and optionally filtered menu.
func (s *locationService) Menu(ctx context.Context, id, diet string) (*model.LocationMenu, error) {
	tag, err := model.ParseDietaryTag(diet)
	if err != nil {
		s.logger.Debug().Str("diet", diet).Msg("invalid dietary tag")
		return nil, err
	}

	loc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	menu := catalog.BuildMenu(*loc, tag)
	return &menu, nil
}

// ItemsByIDs returns the catalogue items with the given IDs.
func (s *locationService) ItemsByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}

	items, err := s.locationRepo.ItemsByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to get menu items by IDs")
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	s.logger.Debug().
		Int("requested", len(ids)).
		Int("found", len(items)).
		Msg("retrieved menu items by IDs")

	return items, nil
}
