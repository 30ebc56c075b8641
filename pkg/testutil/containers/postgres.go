//go:build integration

package containers

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"signup-service/migrations"
	"signup-service/pkg/db"
)

// PostgresContainer wraps a testcontainers Postgres instance with the
// signup schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *db.DB
}

// NewPostgresContainer starts Postgres, connects and runs migrations.
// The container is terminated when the test finishes.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("signup"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	database, err := db.Connect(ctx, dsn, 5, logger)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(database.Close)

	if err := database.RunMigrations(ctx, migrations.FS); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &PostgresContainer{Container: container, DB: database}
}

// TruncateTables empties the given tables between tests.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	_, err := p.DB.Pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", "))
	return err
}
