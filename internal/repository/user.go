package repository

import (
	"context"

	"clubapi/internal/model"
)

// UserRepository defines read access to admin credentials plus the single
// write used by startup provisioning. Lookup is by exact, case-sensitive
// username.
type UserRepository interface {
	// FindByUsername returns the credential record, or sql.ErrNoRows.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create inserts a new credential record.
	Create(ctx context.Context, u *model.User) (*model.User, error)
}
