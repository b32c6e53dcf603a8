package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dining-companion/internal/model"

	"gopkg.in/yaml.v3"
)

// Loader defines the interface for loading catalogue fixtures.
type Loader interface {
	// Load reads a fixture and returns its validated locations.
	// The format is chosen from the extension: .json, .yaml or .yml,
	// optionally followed by .gz.
	Load(ctx context.Context, path string) ([]model.DiningLocation, error)
}

//go:embed fixtures/locations.json
var defaultFixture []byte

// Default returns the embedded campus catalogue.
// Every call decodes a fresh copy, so callers may keep the result.
func Default() ([]model.DiningLocation, error) {
	return decode(bytes.NewReader(defaultFixture), "locations.json")
}

// decode parses and validates a fixture read from r.
func decode(r io.Reader, name string) ([]model.DiningLocation, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()

		r = gzipReader
		name = strings.TrimSuffix(name, ".gz")
	}

	var locations []model.DiningLocation

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.NewDecoder(r).Decode(&locations); err != nil {
			return nil, fmt.Errorf("failed to decode JSON catalogue %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&locations); err != nil {
			return nil, fmt.Errorf("failed to decode YAML catalogue %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalogue format %q for %s", ext, name)
	}

	if err := Validate(locations); err != nil {
		return nil, fmt.Errorf("catalogue %s: %w", name, err)
	}

	return locations, nil
}
