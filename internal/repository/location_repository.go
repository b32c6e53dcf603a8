package repository

import (
	"context"
	"errors"
	"fmt"

	"dining-companion/internal/catalog"
	"dining-companion/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	locationColumns = `id, name, image, is_open, closing_time, crowd_level, wait_time, stations, latitude, longitude`
	itemColumns     = `m.id, m.location_id, m.name, m.description, m.price, m.calories, m.dietary_tags, m.station, m.is_popular`
)

// locationRepository implements the LocationRepository interface using PostgreSQL.
type locationRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewLocationRepository creates a new PostgreSQL-backed location repository.
func NewLocationRepository(pool *pgxpool.Pool, logger zerolog.Logger) LocationRepository {
	return &locationRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "location").Logger(),
	}
}

// List retrieves every location with its menu, in catalogue order.
func (r *locationRepository) List(ctx context.Context) ([]model.DiningLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM dining_locations ORDER BY position`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query locations")
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	locations, err := pgx.CollectRows(rows, scanLocation)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan location rows")
		return nil, fmt.Errorf("failed to scan locations: %w", err)
	}

	items, err := r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items m
		JOIN dining_locations l ON l.id = m.location_id
		ORDER BY l.position, m.position
	`)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(locations))
	for i := range locations {
		index[locations[i].ID] = i
	}
	for _, it := range items {
		i := index[it.locationID]
		locations[i].Menu = append(locations[i].Menu, it.MenuItem)
	}

	return locations, nil
}

// GetByID retrieves a single location by its ID.
func (r *locationRepository) GetByID(ctx context.Context, id string) (*model.DiningLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM dining_locations WHERE id = $1`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("location_id", id).Msg("failed to query location")
		return nil, fmt.Errorf("failed to query location: %w", err)
	}

	loc, err := pgx.CollectExactlyOneRow(rows, scanLocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("location_id", id).Msg("location not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("location_id", id).Msg("failed to scan location")
		return nil, fmt.Errorf("failed to scan location: %w", err)
	}

	items, err := r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items m
		WHERE m.location_id = $1
		ORDER BY m.position
	`, id)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		loc.Menu = append(loc.Menu, it.MenuItem)
	}

	return &loc, nil
}

// ItemsByIDs retrieves menu items by their IDs in catalogue order.
func (r *locationRepository) ItemsByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}

	items, err := r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items m
		JOIN dining_locations l ON l.id = m.location_id
		WHERE m.id = ANY($1)
		ORDER BY l.position, m.position
	`, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.MenuItem)
	}
	return out, nil
}

// Replace reseeds the catalogue inside a single transaction.
func (r *locationRepository) Replace(ctx context.Context, locations []model.DiningLocation) error {
	if err := catalog.Validate(locations); err != nil {
		return fmt.Errorf("refusing to replace catalogue: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM menu_items`); err != nil {
		return fmt.Errorf("failed to clear menu items: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM dining_locations`); err != nil {
		return fmt.Errorf("failed to clear locations: %w", err)
	}

	locationRows := make([][]any, 0, len(locations))
	var itemRows [][]any
	for pos, loc := range locations {
		stations := loc.Stations
		if stations == nil {
			stations = []string{}
		}
		locationRows = append(locationRows, []any{
			loc.ID, pos, loc.Name, loc.Image, loc.IsOpen, loc.ClosingTime,
			string(loc.CrowdLevel), loc.WaitTime, stations,
			loc.Coordinates.Latitude, loc.Coordinates.Longitude,
		})

		for itemPos, item := range loc.Menu {
			itemRows = append(itemRows, []any{
				item.ID, loc.ID, itemPos, item.Name, item.Description, item.Price,
				item.Calories, tagStrings(item.DietaryTags), item.Station, item.IsPopular,
			})
		}
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"dining_locations"},
		[]string{"id", "position", "name", "image", "is_open", "closing_time", "crowd_level", "wait_time", "stations", "latitude", "longitude"},
		pgx.CopyFromRows(locationRows),
	); err != nil {
		r.logger.Error().Err(err).Msg("failed to copy locations")
		return fmt.Errorf("failed to copy locations: %w", err)
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"menu_items"},
		[]string{"id", "location_id", "position", "name", "description", "price", "calories", "dietary_tags", "station", "is_popular"},
		pgx.CopyFromRows(itemRows),
	); err != nil {
		r.logger.Error().Err(err).Msg("failed to copy menu items")
		return fmt.Errorf("failed to copy menu items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit catalogue")
		return fmt.Errorf("failed to commit catalogue: %w", err)
	}

	r.logger.Info().
		Int("locations", len(locationRows)).
		Int("items", len(itemRows)).
		Msg("catalogue replaced")

	return nil
}

// locatedItem is a menu item together with the location that serves it.
type locatedItem struct {
	model.MenuItem
	locationID string
}

func (r *locationRepository) queryItems(ctx context.Context, query string, args ...any) ([]locatedItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan menu item rows")
		return nil, fmt.Errorf("failed to scan menu items: %w", err)
	}

	return items, nil
}

func scanLocation(row pgx.CollectableRow) (model.DiningLocation, error) {
	var loc model.DiningLocation
	var crowd string

	err := row.Scan(
		&loc.ID, &loc.Name, &loc.Image, &loc.IsOpen, &loc.ClosingTime,
		&crowd, &loc.WaitTime, &loc.Stations,
		&loc.Coordinates.Latitude, &loc.Coordinates.Longitude,
	)
	loc.CrowdLevel = model.CrowdLevel(crowd)
	loc.Menu = []model.MenuItem{}

	return loc, err
}

func scanItem(row pgx.CollectableRow) (locatedItem, error) {
	var it locatedItem
	var tags []string

	err := row.Scan(
		&it.ID, &it.locationID, &it.Name, &it.Description, &it.Price,
		&it.Calories, &tags, &it.Station, &it.IsPopular,
	)

	it.DietaryTags = make([]model.DietaryTag, len(tags))
	for i, tag := range tags {
		it.DietaryTags[i] = model.DietaryTag(tag)
	}

	return it, err
}

func tagStrings(tags []model.DietaryTag) []string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = string(tag)
	}
	return out
}
