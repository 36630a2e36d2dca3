package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"clubapi/internal/model"
	"clubapi/internal/repository"
)

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// The images column is JSONB holding an array of relative upload paths.
type EventPostgres struct {
	db *sql.DB
}

// NewEventPostgres creates a new EventPostgres repository.
func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

// Create inserts a new event row and returns the stored record.
func (r *EventPostgres) Create(ctx context.Context, ev *model.Event) (*model.Event, error) {
	images, err := json.Marshal(ev.Images)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}

	const q = `
		INSERT INTO events (title, date, description, link, images)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, date, description, link, images
	`
	row := r.db.QueryRowContext(ctx, q,
		ev.Title,
		ev.Date,
		ev.Description,
		ev.Link,
		images,
	)
	return scanEvent(row)
}

// List returns all events ordered by date ascending.
func (r *EventPostgres) List(ctx context.Context) ([]model.Event, error) {
	const q = `
		SELECT id, title, date, description, link, images
		FROM events
		ORDER BY date ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes an event by ID. Returns sql.ErrNoRows when no row matched.
func (r *EventPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM events WHERE id = $1`
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var (
		ev  model.Event
		raw []byte
	)
	if err := row.Scan(
		&ev.ID,
		&ev.Title,
		&ev.Date,
		&ev.Description,
		&ev.Link,
		&raw,
	); err != nil {
		return nil, err
	}
	ev.Images = []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ev.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}
	return &ev, nil
}
