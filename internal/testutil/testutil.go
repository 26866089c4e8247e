package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/wardle/internal/api"
	"github.com/dom/wardle/internal/catalog"
	"github.com/dom/wardle/internal/config"
	"github.com/dom/wardle/internal/domain"
	"github.com/dom/wardle/internal/repository"
	"github.com/dom/wardle/internal/repository/memory"
	repoPostgres "github.com/dom/wardle/internal/repository/postgres"
	"github.com/dom/wardle/internal/service"
	"github.com/dom/wardle/internal/websocket"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection.
// It is skipped in -short mode.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_wardle"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"stored_states",
		"champions",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "0", // Random port
		Environment:    "test",
		LogLevel:       "disabled",
		ClientOrigin:   "http://localhost:5173",
		StorageDriver:  config.StorageMemory,
		ResetTimezone:  "UTC",
		AdminJWTSecret: "test-admin-secret",
		AdminTokenTTL:  time.Hour,
		CatalogRemote:  false,
		HTTPTimeout:    time.Second,
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	Repos    *repository.Repositories
	Services *service.Services
	Hub      *websocket.Hub
	Config   *config.Config
	Clock    *TestClock
}

// NewTestServer creates a complete test server over in-memory storage and
// SampleCatalog, with the clock set to TestDate.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig()
	clock := NewTestClock(TestDate)
	log := zerolog.Nop()

	repos := memory.NewRepositories()
	provider := catalog.NewProvider(nil, nil, log)
	services := service.NewServices(repos, provider, clock.Clock(), cfg, log)
	services.Catalog.Set(SampleCatalog(), domain.CatalogSnapshot{Source: catalog.SourceBundled, LoadedAt: TestDate})

	hub := websocket.NewHub(services.Game, log)
	go hub.Run()

	router := api.NewRouter(services, hub, cfg, log)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Repos:    repos,
		Services: services,
		Hub:      hub,
		Config:   cfg,
		Clock:    clock,
	}

	t.Cleanup(func() {
		server.Close()
		hub.Stop()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}

// WebSocketURL returns the WebSocket URL
func (ts *TestServer) WebSocketURL() string {
	wsURL := "ws" + ts.Server.URL[4:] // Replace "http" with "ws"
	return wsURL + "/api/v1/ws"
}

// AdminToken mints a valid admin token for the server's secret.
func (ts *TestServer) AdminToken(t *testing.T) string {
	t.Helper()

	token, err := ts.Services.Auth.IssueAdminToken()
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	return token
}
