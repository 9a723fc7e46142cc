// Package db embeds the SQL migrations of the drive console schema.
package db

import (
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrations holds the up and down SQL files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsTable is the golang-migrate bookkeeping table.
const MigrationsTable = "drive_schema_migrations"

// NewMigrate returns a migrate instance reading the embedded migrations.
func NewMigrate(databaseURL string) (*migrate.Migrate, error) {
	d, err := iofs.New(Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to create iofs driver: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", d, WithMigrationsTable(databaseURL))
}

// WithMigrationsTable appends the x-migrations-table parameter to a
// postgres URL.
func WithMigrationsTable(databaseURL string) string {
	if strings.Contains(databaseURL, "?") {
		return databaseURL + "&x-migrations-table=" + MigrationsTable
	}
	return databaseURL + "?x-migrations-table=" + MigrationsTable
}
