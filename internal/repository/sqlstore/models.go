package sqlstore

import (
	"time"

	"github.com/uptrace/bun"

	"wishboard/internal/domain"
)

type eventModel struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Name      string    `bun:"name,notnull"`
	Slug      string    `bun:"slug,notnull,unique"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (m *eventModel) toDomain() *domain.Event {
	return &domain.Event{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

type wishModel struct {
	bun.BaseModel `bun:"table:wishes,alias:w"`

	ID         int64     `bun:"id,pk,autoincrement"`
	EventID    int64     `bun:"event_id,notnull"`
	SenderName string    `bun:"sender_name"`
	Message    string    `bun:"message,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
}

func (m *wishModel) toDomain() *domain.Wish {
	return &domain.Wish{
		ID:         m.ID,
		EventID:    m.EventID,
		SenderName: m.SenderName,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt.UTC(),
	}
}
