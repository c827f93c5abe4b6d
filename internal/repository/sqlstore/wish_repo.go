package sqlstore

import (
	"context"

	"github.com/uptrace/bun"

	"wishboard/internal/domain"
)

type wishRepository struct {
	DB *bun.DB
}

// NewWishRepository returns a domain.WishRepository backed by bun.
func NewWishRepository(db *bun.DB) domain.WishRepository {
	return &wishRepository{DB: db}
}

func (r *wishRepository) Create(ctx context.Context, w *domain.Wish) error {
	m := &wishModel{
		EventID:    w.EventID,
		SenderName: w.SenderName,
		Message:    w.Message,
		CreatedAt:  w.CreatedAt,
	}
	if _, err := r.DB.NewInsert().Model(m).Exec(ctx); err != nil {
		return err
	}
	w.ID = m.ID
	return nil
}

func (r *wishRepository) ListByEventID(ctx context.Context, eventID int64, order domain.SortOrder, limit int) ([]*domain.Wish, error) {
	var rows []wishModel
	q := r.DB.NewSelect().
		Model(&rows).
		Where("event_id = ?", eventID)
	if order == domain.OldestFirst {
		q = q.OrderExpr("created_at ASC, id ASC")
	} else {
		q = q.OrderExpr("created_at DESC, id DESC")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	wishes := make([]*domain.Wish, 0, len(rows))
	for i := range rows {
		wishes = append(wishes, rows[i].toDomain())
	}
	return wishes, nil
}

func (r *wishRepository) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	return r.DB.NewSelect().
		Model((*wishModel)(nil)).
		Where("event_id = ?", eventID).
		Count(ctx)
}

func (r *wishRepository) Delete(ctx context.Context, eventID, wishID int64) error {
	result, err := r.DB.NewDelete().
		Model((*wishModel)(nil)).
		Where("id = ?", wishID).
		Where("event_id = ?", eventID).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
