package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wishboard/internal/domain"
)

// Timestamp layouts used by the query API.
const (
	summaryTimeLayout = time.RFC3339
	feedTimeLayout    = "15:04"
)

type wishService struct {
	logger         *slog.Logger
	eventRepo      domain.EventRepository
	wishRepo       domain.WishRepository
	notifier       domain.WishNotifier
	contextTimeout time.Duration
	now            func() time.Time
}

// NewWishService returns a domain.WishService. notifier may be nil.
func NewWishService(logger *slog.Logger,
	eventRepo domain.EventRepository,
	wishRepo domain.WishRepository,
	notifier domain.WishNotifier,
	timeout time.Duration,
) domain.WishService {
	return &wishService{
		logger:         logger,
		eventRepo:      eventRepo,
		wishRepo:       wishRepo,
		notifier:       notifier,
		contextTimeout: timeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

type submitWishInput struct {
	SenderName string `form:"sender_name"`
	Message    string `form:"message" validate:"required"`
}

func (s *wishService) SubmitWish(ctx context.Context, slug, senderName, message string) (*domain.Wish, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := getEventBySlug(ctx, s.eventRepo, slug)
	if err != nil {
		return nil, err
	}

	in := submitWishInput{
		SenderName: strings.TrimSpace(senderName),
		Message:    strings.TrimSpace(message),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.SenderName == "" {
		in.SenderName = domain.AnonymousSender
	}

	wish := domain.NewWish(event.ID, in.SenderName, in.Message, s.now())
	if err := s.wishRepo.Create(ctx, wish); err != nil {
		return nil, fmt.Errorf("create wish: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyNewWish(ctx, event, wish); err != nil {
			s.logger.WarnContext(ctx, "new wish notification failed", "event", event.Slug, "wish_id", wish.ID, "err", err)
		}
	}
	return wish, nil
}

func (s *wishService) DeleteWish(ctx context.Context, slug string, wishID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := getEventBySlug(ctx, s.eventRepo, slug)
	if err != nil {
		return err
	}
	if err := s.wishRepo.Delete(ctx, event.ID, wishID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete wish: %w", err)
	}
	return nil
}

func (s *wishService) ListWishes(ctx context.Context, slug string) (*domain.Event, []*domain.Wish, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := getEventBySlug(ctx, s.eventRepo, slug)
	if err != nil {
		return nil, nil, err
	}
	wishes, err := s.wishRepo.ListByEventID(ctx, event.ID, domain.NewestFirst, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("list wishes: %w", err)
	}
	return event, wishes, nil
}

func (s *wishService) GetSummary(ctx context.Context, slug string) (*domain.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := getEventBySlug(ctx, s.eventRepo, slug)
	if err != nil {
		return nil, err
	}
	total, err := s.wishRepo.CountByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("count wishes: %w", err)
	}
	recent, err := s.wishRepo.ListByEventID(ctx, event.ID, domain.NewestFirst, domain.SummaryWishLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent wishes: %w", err)
	}

	items := make([]domain.WishSummaryItem, 0, len(recent))
	for _, w := range recent {
		items = append(items, domain.WishSummaryItem{
			Sender:  w.SenderName,
			Message: w.Message,
			When:    w.CreatedAt.UTC().Format(summaryTimeLayout),
		})
	}
	return &domain.Summary{
		Event: event.Name,
		Slug:  event.Slug,
		Total: total,
		Last5: items,
	}, nil
}

func (s *wishService) GetAllWishes(ctx context.Context, slug string) (*domain.WishFeed, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := getEventBySlug(ctx, s.eventRepo, slug)
	if err != nil {
		return nil, err
	}
	wishes, err := s.wishRepo.ListByEventID(ctx, event.ID, domain.OldestFirst, 0)
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", err)
	}

	items := make([]domain.WishFeedItem, 0, len(wishes))
	for _, w := range wishes {
		items = append(items, domain.WishFeedItem{
			ID:      w.ID,
			Sender:  w.SenderName,
			Message: w.Message,
			When:    w.CreatedAt.UTC().Format(feedTimeLayout),
		})
	}
	return &domain.WishFeed{
		EventName: event.Name,
		Slug:      event.Slug,
		Total:     len(items),
		Wishes:    items,
	}, nil
}
