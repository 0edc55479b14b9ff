// Package testhelpers starts a disposable PostgreSQL for integration tests.
package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"smartassess-backend/pkg/database"
)

const (
	postgresImage = "postgres:16-alpine"
	appUserPass   = "app_user_test_password"
)

// TestDB holds a migrated database. Owner bypasses row security and is used
// for fixtures and assertions; App connects as app_user like the service does.
type TestDB struct {
	Container testcontainers.Container
	Owner     *pgxpool.Pool
	App       *database.DB
	OwnerURL  string
	AppURL    string
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB returns a container shared by every test in the package run.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})
	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}
	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "smartassess_test",
			"POSTGRES_USER":     "owner",
			"POSTGRES_PASSWORD": "owner_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	ownerURL := fmt.Sprintf("postgres://owner:owner_password@%s:%s/smartassess_test?sslmode=disable", host, port.Port())
	appURL := fmt.Sprintf("postgres://app_user:%s@%s:%s/smartassess_test?sslmode=disable", appUserPass, host, port.Port())

	if err := database.RunMigrations(ownerURL, zap.NewNop()); err != nil {
		return nil, err
	}

	owner, err := pgxpool.New(ctx, ownerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner pool: %w", err)
	}

	// Deployments grant LOGIN out of band; do the same here.
	if _, err := owner.Exec(ctx, fmt.Sprintf("ALTER ROLE app_user WITH LOGIN PASSWORD '%s'", appUserPass)); err != nil {
		return nil, fmt.Errorf("failed to enable app_user login: %w", err)
	}

	app, err := database.NewPostgresConnection(ctx, appURL, database.PoolConfig{MaxConns: 10})
	if err != nil {
		return nil, err
	}

	return &TestDB{
		Container: container,
		Owner:     owner,
		App:       app,
		OwnerURL:  ownerURL,
		AppURL:    appURL,
	}, nil
}

// CreateUser inserts a principal with the owner connection and returns its id.
func (db *TestDB) CreateUser(t *testing.T, role string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Owner.Exec(context.Background(),
		`INSERT INTO users (id, email, role) VALUES ($1, $2, $3)`,
		id, id+"@example.test", role,
	)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return id
}

// Count runs a COUNT(*) query as the owner, bypassing row security.
func (db *TestDB) Count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	if err := db.Owner.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	return n
}
