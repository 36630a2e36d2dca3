package postgres

import (
	"context"
	"database/sql"

	"clubapi/internal/model"
	"clubapi/internal/repository"
)

// TeamPostgres is a PostgreSQL implementation of repository.TeamRepository.
type TeamPostgres struct {
	db *sql.DB
}

// NewTeamPostgres creates a new TeamPostgres repository.
func NewTeamPostgres(db *sql.DB) *TeamPostgres {
	return &TeamPostgres{db: db}
}

var _ repository.TeamRepository = (*TeamPostgres)(nil)

// Create inserts a new team member row and returns the stored record.
func (r *TeamPostgres) Create(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error) {
	const q = `
		INSERT INTO team (name, role, dept, photo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, role, dept, photo
	`
	row := r.db.QueryRowContext(ctx, q, m.Name, m.Role, m.Dept, m.Photo)
	var out model.TeamMember
	if err := row.Scan(&out.ID, &out.Name, &out.Role, &out.Dept, &out.Photo); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all team members in insertion order.
func (r *TeamPostgres) List(ctx context.Context) ([]model.TeamMember, error) {
	const q = `
		SELECT id, name, role, dept, photo
		FROM team
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]model.TeamMember, 0)
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Dept, &m.Photo); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

// Delete removes a team member by ID. Returns sql.ErrNoRows when no row matched.
func (r *TeamPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM team WHERE id = $1`
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
