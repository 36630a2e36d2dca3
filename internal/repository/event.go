package repository

import (
	"context"

	"clubapi/internal/model"
)

// EventRepository defines data access for events.
type EventRepository interface {
	// Create inserts a new event and returns the stored record with its
	// database-assigned ID.
	Create(ctx context.Context, ev *model.Event) (*model.Event, error)

	// List returns all events ordered by date ascending.
	List(ctx context.Context) ([]model.Event, error)

	// Delete removes an event by ID. Returns sql.ErrNoRows if no row matched.
	Delete(ctx context.Context, id int64) error
}
