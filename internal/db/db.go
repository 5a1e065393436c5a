package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/config"
)

//go:embed schema.sql
var schemaSQL embed.FS

// Driver names as registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// DB wraps a database connection with helper methods.
type DB struct {
	*sql.DB
	driver string
}

// New wraps an existing connection. Used by tests with sqlmock.
func New(sqlDB *sql.DB, driver string) *DB {
	return &DB{DB: sqlDB, driver: driver}
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// DSN returns the driver name and connection string for cfg.
func DSN(cfg config.DatabaseConfig) (driver, dsn string, err error) {
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "postgresql":
		return DriverPostgres, fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.Username,
			cfg.Password,
			cfg.Database,
			cfg.SSLMode,
		), nil
	case "sqlite", "sqlite3":
		if cfg.Database == "" {
			return "", "", errors.New("sqlite requires database to be a file path")
		}
		return DriverSQLite, fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.Database), nil
	default:
		return "", "", errors.Newf("unsupported database driver %q", cfg.Driver)
	}
}

// Connect opens and pings the configured database.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	driver, dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, errors.Wrapf(err, "failed to ping %s database", driver)
	}

	return New(sqlDB, driver), nil
}

// InitSchema creates the catalog table if it does not exist.
func (db *DB) InitSchema(ctx context.Context) error {
	schemaBytes, err := schemaSQL.ReadFile("schema.sql")
	if err != nil {
		return errors.Wrap(err, "failed to read schema file")
	}

	for _, stmt := range splitStatements(string(schemaBytes)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to execute schema")
		}
	}
	return nil
}

// splitStatements splits a schema file on semicolons, dropping comments and blanks.
func splitStatements(schema string) []string {
	var lines []string
	for _, line := range strings.Split(schema, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
