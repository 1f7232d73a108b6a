package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/shipguard/internal/common"
	"github.com/dmitrijs2005/shipguard/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// RunMigrations applies the embedded schema for the given dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect.GooseName); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open returns a Repository for driver, applying migrations for SQL backends.
func Open(ctx context.Context, driver, dsn string) (Repository, error) {
	var dialect Dialect

	switch driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverSQLite:
		dialect = DialectSQLite
	case DriverPostgres:
		dialect = DialectPostgres
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	// every new sqlite connection to ":memory:" would see an empty database
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return NewSQLRepository(db, dialect), nil
}
