package domain

import (
	"context"
	"time"
)

// Event is an occasion that collects wishes, identified publicly by its slug.
// swagger:model Event
type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, slug string, createdAt time.Time) *Event {
	return &Event{
		Name:      name,
		Slug:      slug,
		CreatedAt: createdAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// Create inserts the event and sets its ID. Returns ErrConflict when the slug is taken.
	Create(ctx context.Context, event *Event) error
	// List returns all events, newest first.
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	// Delete removes the event and all of its wishes in one transaction.
	Delete(ctx context.Context, id int64) error
}

// EventService defines event management operations.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	CreateEvent(ctx context.Context, name, slug string) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
}
