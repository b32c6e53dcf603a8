//go:build ignore

package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"dining-companion/internal/catalog"
	"dining-companion/internal/model"

	"gopkg.in/yaml.v3"
)

// generateSampleCatalog writes the built-in campus catalogue in every format
// the catalogue loader accepts, for use with CATALOG_FILE or an S3 upload:
//
//	data/catalog/locations.json
//	data/catalog/locations.json.gz
//	data/catalog/locations.yaml
//	data/catalog/locations.yml.gz
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	locations, err := catalog.Default()
	if err != nil {
		log.Fatalf("Failed to load built-in catalogue: %v", err)
	}

	files := []struct {
		name   string
		gzip   bool
		encode func(io.Writer, []model.DiningLocation) error
	}{
		{"locations.json", false, writeJSON},
		{"locations.json.gz", true, writeJSON},
		{"locations.yaml", false, writeYAML},
		{"locations.yml.gz", true, writeYAML},
	}

	for _, f := range files {
		filePath := filepath.Join(dataDir, f.name)

		if err := createCatalogFile(filePath, f.gzip, locations, f.encode); err != nil {
			log.Fatalf("Failed to create %s: %v", f.name, err)
		}

		fmt.Printf("Created %s with %d locations\n", filePath, len(locations))
	}

	fmt.Println("\nSample catalogue files created successfully!")
	fmt.Println("\nServe one with:")
	fmt.Printf("  CATALOG_FILE=%s go run ./cmd/api\n", filepath.Join(dataDir, "locations.yaml"))
	fmt.Println("\nOr upload one to S3 and set:")
	fmt.Println("  S3_ENABLED=true S3_BUCKET=<bucket> S3_PREFIX=catalog/ CATALOG_FILE=locations.json.gz")
}

func createCatalogFile(filePath string, compress bool, locations []model.DiningLocation, encode func(io.Writer, []model.DiningLocation) error) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if compress {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	if err := encode(w, locations); err != nil {
		return fmt.Errorf("failed to write catalogue: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, locations []model.DiningLocation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(locations)
}

func writeYAML(w io.Writer, locations []model.DiningLocation) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(locations); err != nil {
		return err
	}
	return enc.Close()
}
