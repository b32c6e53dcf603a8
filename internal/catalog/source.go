package catalog

import (
	"context"
	"fmt"

	"dining-companion/internal/config"
	"dining-companion/internal/model"

	"github.com/rs/zerolog"
)

// NewLoader builds the loader chain for the given S3 settings: S3 with a
// local fallback when S3 is enabled and reachable, local files otherwise.
func NewLoader(ctx context.Context, s3cfg config.S3Config, logger zerolog.Logger) Loader {
	fileLoader := NewFileLoader(logger)

	if !s3cfg.Enabled {
		logger.Info().Msg("using local file system for catalogue files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := NewS3Loader(ctx, s3cfg.Bucket, s3cfg.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return NewFallbackLoader(s3Loader, fileLoader, s3cfg.Prefix, true, logger)
}

// Load returns the catalogue named by file, or the embedded fixture when
// file is empty.
func Load(ctx context.Context, file string, s3cfg config.S3Config, logger zerolog.Logger) ([]model.DiningLocation, error) {
	if file == "" {
		logger.Info().Msg("using embedded catalogue")
		return Default()
	}

	locations, err := NewLoader(ctx, s3cfg, logger).Load(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	return locations, nil
}
