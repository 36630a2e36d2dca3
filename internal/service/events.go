package service

import (
	"context"
	"errors"

	"clubapi/internal/model"
	"clubapi/internal/repository"
)

// ErrTitleRequired rejects create calls without the one mandatory field.
var ErrTitleRequired = errors.New("title is required")

// EventInput carries the client-supplied fields for a new event. Images are
// reference paths already produced by the upload pipeline, never raw client
// filenames.
type EventInput struct {
	Title       string
	Date        string
	Description string
	Link        string
	Images      []string
}

// EventService defines the use cases for events.
type EventService interface {
	Create(ctx context.Context, in EventInput) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	// Delete removes an event by ID; sql.ErrNoRows propagates for missing ids.
	Delete(ctx context.Context, id int64) error
}

type eventService struct {
	repo repository.EventRepository
}

// NewEventService constructs an EventService.
func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo}
}

func (s *eventService) Create(ctx context.Context, in EventInput) (*model.Event, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Link == "" {
		in.Link = "#"
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}
	return s.repo.Create(ctx, &model.Event{
		Title:       in.Title,
		Date:        in.Date,
		Description: in.Description,
		Link:        in.Link,
		Images:      images,
	})
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.repo.List(ctx)
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
