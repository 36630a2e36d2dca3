package repository

import (
	"context"

	"clubapi/internal/model"
)

// TeamRepository defines data access for team members.
type TeamRepository interface {
	Create(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
	// Delete removes a member by ID. Returns sql.ErrNoRows if no row matched.
	Delete(ctx context.Context, id int64) error
}
