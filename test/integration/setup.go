package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"dining-companion/internal/catalog"
	"dining-companion/internal/config"
	"dining-companion/internal/database"
	"dining-companion/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Config    config.DatabaseConfig
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the catalogue schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}
	portNum, err := strconv.Atoi(port.Port())
	if err != nil {
		t.Fatalf("failed to parse mapped port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Enabled:         true,
		Host:            host,
		Port:            portNum,
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Config:    dbConfig,
	}
}

// SeedCatalog loads the built-in campus catalogue into the database.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	locations, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load built-in catalogue: %v", err)
	}

	repo := repository.NewLocationRepository(pool, zerolog.Nop())
	if err := repo.Replace(context.Background(), locations); err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	for _, table := range []string{"menu_items", "dining_locations"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// AnalyticsBackend is a simulated analytics backend whose response can be
// swapped between subtests.
type AnalyticsBackend struct {
	*httptest.Server

	mu        sync.Mutex
	handler   http.HandlerFunc
	lastPath  string
	lastQuery string
}

// NewAnalyticsBackend starts a backend that answers with an empty success payload.
func NewAnalyticsBackend(t *testing.T) *AnalyticsBackend {
	t.Helper()

	b := &AnalyticsBackend{}
	b.Respond(http.StatusOK, "application/json", `{"success":true,"recommendations":[],"dislikes":[],"count":0}`)
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.lastPath = r.URL.EscapedPath()
		b.lastQuery = r.URL.RawQuery
		handler := b.handler
		b.mu.Unlock()

		handler(w, r)
	}))
	t.Cleanup(b.Close)

	return b
}

// Respond sets the response for subsequent requests.
func (b *AnalyticsBackend) Respond(status int, contentType, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// LastRequest returns the escaped path and raw query of the latest request.
func (b *AnalyticsBackend) LastRequest() (string, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastPath, b.lastQuery
}
