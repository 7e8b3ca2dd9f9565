package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a schema migration applied in version order.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered list of schema changes. The catalog seed
// is applied separately (see seed.go) so it can be expressed as data.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_locations",
		SQL: `
			CREATE TABLE IF NOT EXISTS locations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				lat REAL NOT NULL,
				lng REAL NOT NULL,
				category TEXT NOT NULL,
				rating REAL,
				notes TEXT NOT NULL DEFAULT '',
				hours TEXT,
				phone TEXT,
				website TEXT,
				place_id TEXT
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_user_plans",
		SQL: `
			CREATE TABLE IF NOT EXISTS user_plans (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_name TEXT NOT NULL UNIQUE,
				plans TEXT NOT NULL DEFAULT '[]',
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 3,
		Name:    "create_user_locations",
		SQL: `
			CREATE TABLE IF NOT EXISTS user_locations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_name TEXT NOT NULL,
				name TEXT NOT NULL,
				lat REAL NOT NULL,
				lng REAL NOT NULL,
				category TEXT NOT NULL,
				rating REAL,
				notes TEXT NOT NULL DEFAULT '',
				hours TEXT,
				phone TEXT,
				website TEXT,
				place_id TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				UNIQUE(user_name, name)
			)
		`,
	},
}

// Migrate applies all pending migrations and the catalog seed.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return seedCatalog(db)
}

func initMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
