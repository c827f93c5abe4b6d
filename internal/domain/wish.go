package domain

import (
	"context"
	"time"
)

// AnonymousSender is stored as the sender name when a guest leaves it blank.
const AnonymousSender = "Anonymous"

// SummaryWishLimit is the number of recent wishes included in a summary.
const SummaryWishLimit = 5

// Wish is a guest-submitted message belonging to exactly one event.
// swagger:model Wish
type Wish struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"event_id"`
	SenderName string    `json:"sender_name"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewWish returns a new Wish with the given fields. ID is set by the repository on create.
func NewWish(eventID int64, senderName, message string, createdAt time.Time) *Wish {
	return &Wish{
		EventID:    eventID,
		SenderName: senderName,
		Message:    message,
		CreatedAt:  createdAt,
	}
}

// SortOrder selects the created_at ordering of wish listings.
type SortOrder int

const (
	NewestFirst SortOrder = iota
	OldestFirst
)

// WishRepository defines the interface for wish storage.
type WishRepository interface {
	Create(ctx context.Context, wish *Wish) error
	// ListByEventID returns the event's wishes in the given order. limit <= 0 means no limit.
	ListByEventID(ctx context.Context, eventID int64, order SortOrder, limit int) ([]*Wish, error)
	CountByEventID(ctx context.Context, eventID int64) (int, error)
	// Delete removes the wish only if it belongs to eventID; otherwise ErrNotFound.
	Delete(ctx context.Context, eventID, wishID int64) error
}

// WishSummaryItem is one entry of Summary.Last5.
// swagger:model WishSummaryItem
type WishSummaryItem struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	When    string `json:"when"`
}

// Summary is the short status of an event used by dashboards.
// swagger:model Summary
type Summary struct {
	Event string            `json:"event"`
	Slug  string            `json:"slug"`
	Total int               `json:"total"`
	Last5 []WishSummaryItem `json:"last5"`
}

// WishFeedItem is one entry of WishFeed.Wishes; When is formatted as HH:MM.
// swagger:model WishFeedItem
type WishFeedItem struct {
	ID      int64  `json:"id"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
	When    string `json:"when"`
}

// WishFeed is every wish of an event, oldest first, as consumed by the live display.
// swagger:model WishFeed
type WishFeed struct {
	EventName string         `json:"event_name"`
	Slug      string         `json:"slug"`
	Total     int            `json:"total"`
	Wishes    []WishFeedItem `json:"wishes"`
}

// WishService defines wish collection and query operations.
type WishService interface {
	SubmitWish(ctx context.Context, slug, senderName, message string) (*Wish, error)
	DeleteWish(ctx context.Context, slug string, wishID int64) error
	// ListWishes returns the event and all of its wishes, newest first.
	ListWishes(ctx context.Context, slug string) (*Event, []*Wish, error)
	GetSummary(ctx context.Context, slug string) (*Summary, error)
	GetAllWishes(ctx context.Context, slug string) (*WishFeed, error)
}
