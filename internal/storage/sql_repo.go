package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shipguard/internal/common"
)

// Dialect holds the driver-specific statements for the session_storage table.
type Dialect struct {
	Name      string
	GooseName string
	get       string
	getLocked string
	set       string
	update    string
	del       string
}

var (
	DialectSQLite = Dialect{
		Name:      "sqlite",
		GooseName: "sqlite3",
		get:       `SELECT value FROM session_storage WHERE key = ?`,
		getLocked: `SELECT value FROM session_storage WHERE key = ?`,
		set: `INSERT INTO session_storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		update: `UPDATE session_storage SET value = ?, updated_at = CURRENT_TIMESTAMP WHERE key = ?`,
		del:    `DELETE FROM session_storage WHERE key = ?`,
	}

	DialectPostgres = Dialect{
		Name:      "pgx",
		GooseName: "postgres",
		get:       `SELECT value FROM session_storage WHERE key = $1`,
		getLocked: `SELECT value FROM session_storage WHERE key = $1 FOR UPDATE`,
		set: `INSERT INTO session_storage (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		update: `UPDATE session_storage SET value = $1, updated_at = CURRENT_TIMESTAMP WHERE key = $2`,
		del:    `DELETE FROM session_storage WHERE key = $1`,
	}
)

// SQLRepository implements Repository over a database/sql handle.
type SQLRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLRepository(db *sql.DB, dialect Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Get(ctx context.Context, key string) (string, error) {
	return r.get(ctx, r.db, r.dialect.get, key)
}

func (r *SQLRepository) get(ctx context.Context, db DBTX, query string, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get storage[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLRepository) Set(ctx context.Context, key string, value string) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.set, key, value); err != nil {
		return fmt.Errorf("failed to set storage[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.del, key); err != nil {
		return fmt.Errorf("failed to delete storage[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		current, err := r.get(ctx, tx, r.dialect.getLocked, key)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, r.dialect.update, next, key); err != nil {
			return fmt.Errorf("failed to update storage[%s]: %w", key, err)
		}
		return nil
	})
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}
