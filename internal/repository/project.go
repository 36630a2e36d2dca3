package repository

import (
	"context"

	"clubapi/internal/model"
)

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	// Delete removes a project by ID. Returns sql.ErrNoRows if no row matched.
	Delete(ctx context.Context, id int64) error
}
