package repository

import "context"

// SettingRepository defines key/value access for site settings.
type SettingRepository interface {
	// Get returns the value for key, or sql.ErrNoRows if absent.
	Get(ctx context.Context, key string) (string, error)

	// Upsert inserts the key or replaces its value.
	Upsert(ctx context.Context, key, value string) error
}
