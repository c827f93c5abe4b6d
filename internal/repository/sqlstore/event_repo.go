package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"wishboard/internal/domain"
)

type eventRepository struct {
	DB *bun.DB
}

// NewEventRepository returns a domain.EventRepository backed by bun.
func NewEventRepository(db *bun.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := &eventModel{
		Name:      e.Name,
		Slug:      e.Slug,
		CreatedAt: e.CreatedAt,
	}
	if _, err := r.DB.NewInsert().Model(m).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: slug %q already exists", domain.ErrConflict, e.Slug)
		}
		return err
	}
	e.ID = m.ID
	return nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	var rows []eventModel
	if err := r.DB.NewSelect().
		Model(&rows).
		OrderExpr("created_at DESC, id DESC").
		Scan(ctx); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].toDomain())
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

func (r *eventRepository) getOne(ctx context.Context, where string, arg any) (*domain.Event, error) {
	m := new(eventModel)
	err := r.DB.NewSelect().
		Model(m).
		Where(where, arg).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *eventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return r.DB.NewSelect().
		Model((*eventModel)(nil)).
		Where("slug = ?", slug).
		Exists(ctx)
}

// Delete removes the event's wishes first, then the event, so the cascade
// holds even on SQLite connections without foreign key enforcement.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*wishModel)(nil)).
			Where("event_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete wishes: %w", err)
		}
		result, err := tx.NewDelete().
			Model((*eventModel)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
