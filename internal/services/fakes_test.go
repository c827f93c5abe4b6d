package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"wishboard/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var baseTime = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// fakeEventRepo is an in-memory EventRepository for tests. Deleting an event
// also deletes its wishes from the linked fakeWishRepo.
type fakeEventRepo struct {
	byID   map[int64]*domain.Event
	nextID int64
	wishes *fakeWishRepo
	err    error // if set, every call returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Slug == e.Slug {
			return domain.ErrConflict
		}
	}
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.byID {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, err := f.GetBySlug(ctx, slug)
	if err == domain.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	if f.wishes != nil {
		for wid, w := range f.wishes.byID {
			if w.EventID == id {
				delete(f.wishes.byID, wid)
			}
		}
	}
	delete(f.byID, id)
	return nil
}

// fakeWishRepo is an in-memory WishRepository for tests.
type fakeWishRepo struct {
	byID   map[int64]*domain.Wish
	nextID int64
	err    error
}

func newFakeWishRepo() *fakeWishRepo {
	return &fakeWishRepo{byID: make(map[int64]*domain.Wish), nextID: 1}
}

func (f *fakeWishRepo) Create(ctx context.Context, w *domain.Wish) error {
	if f.err != nil {
		return f.err
	}
	w.ID = f.nextID
	f.nextID++
	f.byID[w.ID] = w
	return nil
}

func (f *fakeWishRepo) ListByEventID(ctx context.Context, eventID int64, order domain.SortOrder, limit int) ([]*domain.Wish, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Wish
	for _, w := range f.byID {
		if w.EventID == eventID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if order == domain.OldestFirst {
			a, b = b, a
		}
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeWishRepo) CountByEventID(ctx context.Context, eventID int64) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, w := range f.byID {
		if w.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (f *fakeWishRepo) Delete(ctx context.Context, eventID, wishID int64) error {
	if f.err != nil {
		return f.err
	}
	w, ok := f.byID[wishID]
	if !ok || w.EventID != eventID {
		return domain.ErrNotFound
	}
	delete(f.byID, wishID)
	return nil
}

type fakeNotifier struct {
	calls []*domain.Wish
	err   error
}

func (f *fakeNotifier) NotifyNewWish(ctx context.Context, event *domain.Event, wish *domain.Wish) error {
	f.calls = append(f.calls, wish)
	return f.err
}

// tickingClock returns a clock that advances one second per call, starting at baseTime.
func tickingClock() func() time.Time {
	t := baseTime
	return func() time.Time {
		now := t
		t = t.Add(time.Second)
		return now
	}
}
