package postgres

import (
	"context"
	"database/sql"

	"clubapi/internal/model"
	"clubapi/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

// Create inserts a new project row and returns the stored record.
func (r *ProjectPostgres) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	const q = `
		INSERT INTO projects (title, description, tech, repo_link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, tech, repo_link
	`
	row := r.db.QueryRowContext(ctx, q, p.Title, p.Description, p.Tech, p.RepoLink)
	var out model.Project
	if err := row.Scan(&out.ID, &out.Title, &out.Description, &out.Tech, &out.RepoLink); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all projects in insertion order.
func (r *ProjectPostgres) List(ctx context.Context) ([]model.Project, error) {
	const q = `
		SELECT id, title, description, tech, repo_link
		FROM projects
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Tech, &p.RepoLink); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes a project by ID. Returns sql.ErrNoRows when no row matched.
func (r *ProjectPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM projects WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
