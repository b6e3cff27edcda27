package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"content-api/internal/health"
	"content-api/internal/infrastructure/database"
	"content-api/internal/repository"
)

// TestDB is a migrated PostgreSQL container with a pool built the way the
// server builds it.
type TestDB struct {
	Pool      *pgxpool.Pool
	Monitor   *health.Monitor
	Container testcontainers.Container
	DSN       string
}

// SetupTestDB starts a container, applies the embedded migrations and opens
// a pool observed by a health monitor.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("content"),
		postgres.WithUsername("content"),
		postgres.WithPassword("content"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")

	tdb := &TestDB{Container: container}

	tdb.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("connection string: %v", err)
	}

	if err := database.Migrate(tdb.DSN, "up"); err != nil {
		tdb.Cleanup(t)
		t.Fatalf("migrate: %v", err)
	}

	tdb.Monitor = health.NewMonitor(time.Minute)
	tdb.Pool, err = database.NewPostgres(ctx, database.PoolConfig{
		DSN:            tdb.DSN,
		MaxConns:       5,
		ConnectTimeout: 5 * time.Second,
	}, tdb.Monitor)
	if err != nil {
		tdb.Cleanup(t)
		t.Fatalf("create pool: %v", err)
	}

	if err := database.HealthCheck(ctx, tdb.Pool); err != nil {
		tdb.Cleanup(t)
		t.Fatalf("ping: %v", err)
	}

	return tdb
}

// Cleanup closes the pool and terminates the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}
}

// Reset clears every content table.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()
	require.NoError(t, repository.TruncateContent(context.Background(), tdb.Pool))
}
