package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wishboard/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService returns a domain.EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

type createEventInput struct {
	Name string `form:"name" validate:"required"`
	Slug string `form:"slug" validate:"required"`
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, name, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	in := createEventInput{
		Name: strings.TrimSpace(name),
		Slug: strings.TrimSpace(slug),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	exists, err := s.eventRepo.SlugExists(ctx, in.Slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: slug %q already exists", domain.ErrConflict, in.Slug)
	}

	event := domain.NewEvent(in.Name, in.Slug, s.now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		// A concurrent create can still win the race past the pre-check.
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return getEventBySlug(ctx, s.eventRepo, slug)
}

// getEventBySlug resolves an event, passing ErrNotFound through unwrapped.
func getEventBySlug(ctx context.Context, repo domain.EventRepository, slug string) (*domain.Event, error) {
	event, err := repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}
