package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_initial.sql
var migration001 string

//go:embed migrations/002_state_solved.sql
var migration002 string

// migrations is an ordered list of migration SQL statements.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
	{2, migration002},
}

// LatestVersion is the schema version after all migrations are applied.
var LatestVersion = migrations[len(migrations)-1].version

// schemaVersion returns the highest applied migration, or 0 for an empty
// database.
func schemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to check schema version table: %w", err)
	}
	if count == 0 {
		return 0, nil
	}

	var version int
	err = db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// applyMigrations applies all pending migrations.
func applyMigrations(ctx context.Context, db *sql.DB) error {
	currentVersion, err := schemaVersion(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
	}

	return nil
}
