package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"wishboard/internal/domain"
)

var baseTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, CreateSchema(context.Background(), db))
	return db
}

// newMockDB wraps a sqlmock connection in bun for failure-path tests.
func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreateSchema_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, CreateSchema(context.Background(), db))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"postgres unique", &pq.Error{Code: "23505"}, true},
		{"postgres wrapped unique", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
		{"postgres other", &pq.Error{Code: "23503"}, false},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: events.slug (2067)"), true},
		{"other", sql.ErrConnDone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(newTestDB(t))

	ev := domain.NewEvent("Ann's birthday", "ann-30", baseTime)
	require.NoError(t, repo.Create(ctx, ev))
	require.NotZero(t, ev.ID)

	bySlug, err := repo.GetBySlug(ctx, "ann-30")
	require.NoError(t, err)
	assert.Equal(t, ev.ID, bySlug.ID)
	assert.Equal(t, "Ann's birthday", bySlug.Name)
	assert.True(t, baseTime.Equal(bySlug.CreatedAt), "created_at round trip: %v", bySlug.CreatedAt)

	byID, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann-30", byID.Slug)

	exists, err := repo.SlugExists(ctx, "ann-30")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.SlugExists(ctx, "bob-40")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEventRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(newTestDB(t))

	_, err := repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByID(ctx, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, 42), domain.ErrNotFound)
}

func TestEventRepository_DuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, domain.NewEvent("First", "party", baseTime)))
	err := repo.Create(ctx, domain.NewEvent("Second", "party", baseTime.Add(time.Minute)))
	require.ErrorIs(t, err, domain.ErrConflict)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "First", events[0].Name)
}

func TestEventRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(newTestDB(t))

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Create(ctx, domain.NewEvent("Old", "old", baseTime)))
	require.NoError(t, repo.Create(ctx, domain.NewEvent("New", "new", baseTime.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, domain.NewEvent("Mid", "mid", baseTime.Add(time.Minute))))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{events[0].Slug, events[1].Slug, events[2].Slug})
}

func TestEventRepository_DeleteCascadesWishes(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	events := NewEventRepository(db)
	wishes := NewWishRepository(db)

	doomed := domain.NewEvent("Doomed", "doomed", baseTime)
	kept := domain.NewEvent("Kept", "kept", baseTime)
	require.NoError(t, events.Create(ctx, doomed))
	require.NoError(t, events.Create(ctx, kept))

	var doomedWishIDs []int64
	for i := 0; i < 3; i++ {
		w := domain.NewWish(doomed.ID, "Guest", fmt.Sprintf("wish %d", i), baseTime.Add(time.Duration(i)*time.Second))
		require.NoError(t, wishes.Create(ctx, w))
		doomedWishIDs = append(doomedWishIDs, w.ID)
	}
	require.NoError(t, wishes.Create(ctx, domain.NewWish(kept.ID, "Guest", "stays", baseTime)))

	require.NoError(t, events.Delete(ctx, doomed.ID))

	_, err := events.GetByID(ctx, doomed.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	count, err := wishes.CountByEventID(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	for _, id := range doomedWishIDs {
		require.ErrorIs(t, wishes.Delete(ctx, doomed.ID, id), domain.ErrNotFound)
	}

	count, err = wishes.CountByEventID(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWishRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	events := NewEventRepository(db)
	wishes := NewWishRepository(db)

	ev := domain.NewEvent("Wedding", "wedding", baseTime)
	require.NoError(t, events.Create(ctx, ev))

	for i := 1; i <= 7; i++ {
		w := domain.NewWish(ev.ID, fmt.Sprintf("guest-%d", i), fmt.Sprintf("message %d", i), baseTime.Add(time.Duration(i)*time.Minute))
		require.NoError(t, wishes.Create(ctx, w))
		require.NotZero(t, w.ID)
	}

	count, err := wishes.CountByEventID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	newest, err := wishes.ListByEventID(ctx, ev.ID, domain.NewestFirst, 5)
	require.NoError(t, err)
	require.Len(t, newest, 5)
	assert.Equal(t, "message 7", newest[0].Message)
	assert.Equal(t, "message 3", newest[4].Message)

	oldest, err := wishes.ListByEventID(ctx, ev.ID, domain.OldestFirst, 0)
	require.NoError(t, err)
	require.Len(t, oldest, 7)
	assert.Equal(t, "message 1", oldest[0].Message)
	assert.Equal(t, "guest-1", oldest[0].SenderName)
	assert.Equal(t, ev.ID, oldest[0].EventID)
	assert.True(t, baseTime.Add(time.Minute).Equal(oldest[0].CreatedAt))

	none, err := wishes.ListByEventID(ctx, ev.ID+100, domain.NewestFirst, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestWishRepository_SameTimestampOrderedByID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	events := NewEventRepository(db)
	wishes := NewWishRepository(db)

	ev := domain.NewEvent("Party", "party", baseTime)
	require.NoError(t, events.Create(ctx, ev))
	first := domain.NewWish(ev.ID, "A", "first", baseTime)
	second := domain.NewWish(ev.ID, "B", "second", baseTime)
	require.NoError(t, wishes.Create(ctx, first))
	require.NoError(t, wishes.Create(ctx, second))

	got, err := wishes.ListByEventID(ctx, ev.ID, domain.NewestFirst, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestWishRepository_DeleteScopedToEvent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	events := NewEventRepository(db)
	wishes := NewWishRepository(db)

	a := domain.NewEvent("A", "a", baseTime)
	b := domain.NewEvent("B", "b", baseTime)
	require.NoError(t, events.Create(ctx, a))
	require.NoError(t, events.Create(ctx, b))
	w := domain.NewWish(a.ID, "Guest", "hello", baseTime)
	require.NoError(t, wishes.Create(ctx, w))

	require.ErrorIs(t, wishes.Delete(ctx, b.ID, w.ID), domain.ErrNotFound)
	require.NoError(t, wishes.Delete(ctx, a.ID, w.ID))
	require.ErrorIs(t, wishes.Delete(ctx, a.ID, w.ID), domain.ErrNotFound)
}

func TestEventRepository_StoreFailures(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("db unavailable")

	t.Run("list query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .* FROM "events"`).WillReturnError(errBoom)

		_, err := NewEventRepository(db).List(ctx)
		require.ErrorIs(t, err, errBoom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get by slug query error is not a not-found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .* FROM "events"`).WillReturnError(errBoom)

		_, err := NewEventRepository(db).GetBySlug(ctx, "x")
		require.ErrorIs(t, err, errBoom)
		require.NotErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete rolls back when wish delete fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "wishes"`).WillReturnError(errBoom)
		mock.ExpectRollback()

		err := NewEventRepository(db).Delete(ctx, 1)
		require.ErrorIs(t, err, errBoom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete rolls back when event is missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "wishes"`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "events"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := NewEventRepository(db).Delete(ctx, 1)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete commits both statements", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "wishes"`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "events"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewEventRepository(db).Delete(ctx, 1))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWishRepository_StoreFailures(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("db unavailable")

	t.Run("count error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT .* FROM "wishes"`).WillReturnError(errBoom)

		_, err := NewWishRepository(db).CountByEventID(ctx, 1)
		require.ErrorIs(t, err, errBoom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM "wishes"`).WillReturnError(errBoom)

		err := NewWishRepository(db).Delete(ctx, 1, 2)
		require.ErrorIs(t, err, errBoom)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
