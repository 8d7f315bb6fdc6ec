package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Project snapshot. Replaced wholesale on every import; position keeps
-- the upstream ordering so in-memory stable sorts see the input order.
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('active', 'draft', 'submitted', 'overdue')),
    priority_level INTEGER NOT NULL CHECK(priority_level BETWEEN 1 AND 5),
    document_type TEXT NOT NULL,
    agency TEXT,
    due_date TIMESTAMP,
    created_at TIMESTAMP,
    owner_id TEXT,
    owner_name TEXT,
    owner_email TEXT,
    progress_percentage INTEGER NOT NULL DEFAULT 0 CHECK(progress_percentage BETWEEN 0 AND 100),
    health_status TEXT NOT NULL CHECK(health_status IN ('green', 'yellow', 'red')),
    team_size INTEGER NOT NULL DEFAULT 1 CHECK(team_size >= 1)
);
CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position);

-- Durable key-value preferences (filter presets, theme, layout).
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
