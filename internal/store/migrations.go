package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 2

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := db.SchemaVersion()

	migrations := []struct {
		version int
		stmts   []string
	}{
		{1, migrationV1},
		{2, migrationV2},
	}
	for _, m := range migrations {
		if version >= m.version {
			continue
		}
		if err := db.apply(m.version, m.stmts); err != nil {
			return fmt.Errorf("migration v%d: %w", m.version, err)
		}
	}
	return nil
}

// SchemaVersion returns the applied schema version, 0 for a fresh database.
func (db *DB) SchemaVersion() int {
	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		return 0
	}
	return version
}

var migrationV1 = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS analyses (
		id            TEXT PRIMARY KEY,
		created_at    TEXT NOT NULL,
		description   TEXT NOT NULL,
		risk_level    TEXT NOT NULL,
		risk_score    REAL NOT NULL,
		quality_score REAL NOT NULL,
		is_valid      BOOLEAN NOT NULL,
		payload       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at)`,
}

// migrationV2 records where an analysis came from (cli, watch, mcp).
var migrationV2 = []string{
	`ALTER TABLE analyses ADD COLUMN source TEXT NOT NULL DEFAULT 'cli'`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_level ON analyses(risk_level)`,
}

func (db *DB) apply(version int, statements []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", truncate(stmt, 40), err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
		return err
	}

	return tx.Commit()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
