package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending migration to the database at dbPath and
// returns the schema version before and after.
func RunMigrations(dbPath string) (uint, uint, error) {
	// migrate closes the connection it is handed, so it gets its own.
	migrateDB, err := sql.Open("sqlite", dataSourceName(dbPath))
	if err != nil {
		return 0, 0, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		_ = migrateDB.Close()
		return 0, 0, fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = migrateDB.Close()
		return 0, 0, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		_ = migrateDB.Close()
		return 0, 0, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	preVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, 0, fmt.Errorf("read schema version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preVersion, 0, fmt.Errorf("run migrations: %w", err)
	}

	postVersion, _, err := m.Version()
	if err != nil {
		return preVersion, 0, fmt.Errorf("read schema version: %w", err)
	}
	return preVersion, postVersion, nil
}
