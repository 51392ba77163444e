package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog/log"
)

// Database wraps the catalog database connection. The same adapter runs on
// PostgreSQL ("postgres") or SQLite ("sqlite3"); query text is authored with
// ? placeholders and rebound per driver.
type Database struct {
	conn   *sql.DB
	driver string
	dsn    string
}

// NewDatabase opens a catalog database connection for the given driver
// ("postgres" or "sqlite3") and verifies it with a ping.
func NewDatabase(driver, dsn string) (*Database, error) {
	if driver != "postgres" && driver != "sqlite3" {
		return nil, fmt.Errorf("unsupported store driver: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		conn:   db,
		driver: driver,
		dsn:    dsn,
	}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries
func (db *Database) DB() *sql.DB {
	return db.conn
}

// Driver returns the driver name the connection was opened with
func (db *Database) Driver() string {
	return db.driver
}

// Rebind rewrites ? placeholders to the $N form when running on PostgreSQL.
// SQLite takes the query unchanged.
func (db *Database) Rebind(query string) string {
	if db.driver != "postgres" {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// RunMigrations applies every .sql file in dir, in lexical order, that has
// not been applied yet
func (db *Database) RunMigrations(dir string) error {
	log.Info().Str("dir", dir).Msg("Running catalog migrations")

	// Create migrations tracking table
	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := sqlFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}

	for _, migration := range migrations {
		if err := db.runMigration(dir, migration); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration, err)
		}
	}

	log.Info().Int("count", len(migrations)).Msg("Catalog migrations complete")
	return nil
}

// createMigrationsTable creates a table to track which migrations have been run
func (db *Database) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := db.conn.Exec(query)
	return err
}

// runMigration runs a single migration file if it hasn't been applied yet
func (db *Database) runMigration(dir, filename string) error {
	// Check if already applied
	var exists bool
	err := db.conn.QueryRow(
		db.Rebind("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)"),
		filename,
	).Scan(&exists)
	if err != nil {
		return err
	}

	if exists {
		log.Debug().Str("migration", filename).Msg("Skipping already applied migration")
		return nil
	}

	content, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	// Execute migration in a transaction
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}

	// Record migration as applied
	if _, err := tx.Exec(db.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), filename); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info().Str("migration", filename).Msg("Applied migration")
	return nil
}

// SeedData loads the reference data files from dir. Intended for dev
// bootstrap only; the catalog rows are otherwise owned by the external
// loader.
func (db *Database) SeedData(dir string) error {
	seedFiles, err := sqlFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}

	for _, seedFile := range seedFiles {
		content, err := os.ReadFile(filepath.Join(dir, seedFile))
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", seedFile, err)
		}

		if _, err := db.conn.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute seed file %s: %w", seedFile, err)
		}

		log.Info().Str("seed", seedFile).Msg("Seeded reference data")
	}

	return nil
}

// HealthCheck performs a health check on the database
func (db *Database) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}

// sqlFiles returns the .sql files in dir in lexical order
func sqlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}
