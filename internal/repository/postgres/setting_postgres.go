package postgres

import (
	"context"
	"database/sql"

	"clubapi/internal/repository"
)

// SettingPostgres is a PostgreSQL implementation of repository.SettingRepository.
type SettingPostgres struct {
	db *sql.DB
}

// NewSettingPostgres creates a new SettingPostgres repository.
func NewSettingPostgres(db *sql.DB) *SettingPostgres {
	return &SettingPostgres{db: db}
}

var _ repository.SettingRepository = (*SettingPostgres)(nil)

// Get returns the value for key, or sql.ErrNoRows if the key is absent.
func (r *SettingPostgres) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM settings WHERE key = $1`
	var value string
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		return "", err
	}
	return value, nil
}

// Upsert inserts the key or replaces its value.
func (r *SettingPostgres) Upsert(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}
