package catalog

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"dining-companion/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
- id: "10"
  name: Roots
  image: https://example.com/roots.jpg
  isOpen: false
  closingTime: "3:00 PM"
  crowdLevel: Low
  waitTime: 0
  stations: [Roots]
  coordinates:
    latitude: 32.88
    longitude: -117.24
  menu:
    - id: "1001"
      name: Lentil Bowl
      description: Red lentils, greens.
      price: 8.25
      calories: 480
      dietaryTags: [Vegan, Halal]
      station: Roots
      isPopular: true
`

// writeTestFile writes content to filename inside a temp dir, gzipping when the name ends in .gz.
func writeTestFile(t *testing.T, filename string, content []byte) string {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, filename)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	if filepath.Ext(filename) == ".gz" {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		_, err = gzipWriter.Write(content)
	} else {
		_, err = file.Write(content)
	}
	require.NoError(t, err)

	return filePath
}

func TestDefault(t *testing.T) {
	locations, err := Default()
	require.NoError(t, err)

	require.Len(t, locations, 6)
	assert.Equal(t, "64 Degrees", locations[0].Name)
	assert.Equal(t, model.CrowdBusy, locations[0].CrowdLevel)
	assert.Equal(t, 25, locations[0].WaitTime)
	require.Len(t, locations[0].Menu, 2)
	assert.Equal(t, []model.DietaryTag{model.DietaryVegan, model.DietaryGlutenFree}, locations[0].Menu[1].DietaryTags)
	assert.True(t, locations[0].Menu[0].IsPopular)
	assert.InDelta(t, 32.8749, locations[0].Coordinates.Latitude, 1e-9)
	assert.Len(t, AllItems(locations), 8)

	// Callers get independent copies.
	locations[0].Name = "changed"
	again, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "64 Degrees", again[0].Name)
}

func TestFileLoader_Load(t *testing.T) {
	logger := zerolog.Nop()
	loader := NewFileLoader(logger)
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
		content  []byte
	}{
		{name: "JSON", filename: "catalog.json", content: defaultFixture},
		{name: "Gzipped JSON", filename: "catalog.json.gz", content: defaultFixture},
		{name: "YAML", filename: "catalog.yaml", content: []byte(yamlCatalog)},
		{name: "Gzipped YML", filename: "catalog.yml.gz", content: []byte(yamlCatalog)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := writeTestFile(t, tt.filename, tt.content)

			locations, err := loader.Load(ctx, filePath)
			require.NoError(t, err)
			require.NotEmpty(t, locations)
			assert.NotEmpty(t, locations[0].Menu)
		})
	}
}

func TestFileLoader_Load_YAMLFields(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := writeTestFile(t, "roots.yaml", []byte(yamlCatalog))

	locations, err := loader.Load(context.Background(), filePath)
	require.NoError(t, err)
	require.Len(t, locations, 1)

	loc := locations[0]
	assert.Equal(t, "Roots", loc.Name)
	assert.False(t, loc.IsOpen)
	assert.Equal(t, "3:00 PM", loc.ClosingTime)
	assert.Equal(t, []string{"Roots"}, loc.Stations)
	require.Len(t, loc.Menu, 1)
	assert.Equal(t, model.MenuItem{
		ID:          "1001",
		Name:        "Lentil Bowl",
		Description: "Red lentils, greens.",
		Price:       8.25,
		Calories:    480,
		DietaryTags: []model.DietaryTag{model.DietaryVegan, model.DietaryHalal},
		Station:     "Roots",
		IsPopular:   true,
	}, loc.Menu[0])
}

func TestFileLoader_Load_Errors(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	ctx := context.Background()

	t.Run("Missing file", func(t *testing.T) {
		_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open catalogue file")
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		filePath := writeTestFile(t, "catalog.csv", []byte("id,name"))
		_, err := loader.Load(ctx, filePath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported catalogue format")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		filePath := writeTestFile(t, "catalog.json", []byte("[{"))
		_, err := loader.Load(ctx, filePath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode JSON catalogue")
	})

	t.Run("Not gzip", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "catalog.json.gz")
		require.NoError(t, os.WriteFile(filePath, []byte("plain"), 0o600))
		_, err := loader.Load(ctx, filePath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gzip")
	})

	t.Run("Invalid catalogue", func(t *testing.T) {
		content := []byte(`[{"id":"1","name":"A","crowdLevel":"Low","menu":[{"id":"9"}]},{"id":"2","name":"B","crowdLevel":"Low","menu":[{"id":"9"}]}]`)
		filePath := writeTestFile(t, "dup.json", content)
		_, err := loader.Load(ctx, filePath)
		require.ErrorIs(t, err, model.ErrInvalidCatalog)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		filePath := writeTestFile(t, "catalog.json", defaultFixture)
		_, err := loader.Load(cancelled, filePath)
		require.ErrorIs(t, err, context.Canceled)
	})
}
