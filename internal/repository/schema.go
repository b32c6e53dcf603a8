package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the PostgreSQL catalogue schema. Positions keep fixture order.
const Schema = `
	CREATE TABLE IF NOT EXISTS dining_locations (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		is_open BOOLEAN NOT NULL DEFAULT FALSE,
		closing_time TEXT NOT NULL DEFAULT '',
		crowd_level TEXT NOT NULL CHECK (crowd_level IN ('Low', 'Moderate', 'Busy')),
		wait_time INTEGER NOT NULL DEFAULT 0 CHECK (wait_time >= 0),
		stations TEXT[] NOT NULL DEFAULT '{}',
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		location_id TEXT NOT NULL REFERENCES dining_locations(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		calories INTEGER NOT NULL CHECK (calories >= 0),
		dietary_tags TEXT[] NOT NULL DEFAULT '{}',
		station TEXT NOT NULL DEFAULT '',
		is_popular BOOLEAN NOT NULL DEFAULT FALSE
	);
	CREATE INDEX IF NOT EXISTS idx_dining_locations_position ON dining_locations(position);
	CREATE INDEX IF NOT EXISTS idx_menu_items_location ON menu_items(location_id, position);
`

// EnsureSchema creates the catalogue tables when they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create catalogue schema: %w", err)
	}
	return nil
}
