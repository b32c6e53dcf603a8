package catalog

import (
	"context"
	"fmt"
	"os"

	"dining-companion/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for catalogue fixtures on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue fixture from filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.DiningLocation, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", filePath, err)
	}
	defer file.Close()

	locations, err := decode(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalogue file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("locations_loaded", len(locations)).
		Int("items_loaded", len(AllItems(locations))).
		Msg("catalogue file loaded successfully")

	return locations, nil
}
