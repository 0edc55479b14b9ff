package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq" // database/sql driver used by the migrator only
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies pending migrations using the owner connection. The
// application pool never runs DDL; it connects as app_user.
func RunMigrations(ownerURL string, logger *zap.Logger) error {
	db, err := sql.Open("postgres", ownerURL)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	return MigrateUp(db, logger)
}

// MigrateUp is idempotent: only pending migrations are executed.
func MigrateUp(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No migrations to apply (database up-to-date)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("Applied migrations successfully", zap.Uint("version", version))
	return nil
}
