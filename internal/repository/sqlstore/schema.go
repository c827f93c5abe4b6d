package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/uptrace/bun"
)

// CreateSchema creates the events and wishes tables if they do not exist yet.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	if err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewCreateTable().
			Model((*eventModel)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewCreateTable().
			Model((*wishModel)(nil)).
			IfNotExists().
			ForeignKey(`("event_id") REFERENCES "events" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewCreateIndex().
			Model((*wishModel)(nil)).
			Index("wishes_event_id_idx").
			Column("event_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		return nil
	}); err != nil {
		return fmt.Errorf("CreateSchema: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a unique constraint failure from
// Postgres (SQLSTATE 23505) or SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var perr *pq.Error
	if errors.As(err, &perr) {
		return perr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
