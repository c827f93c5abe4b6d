package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wishboard/internal/delivery/http/helpers"
	"wishboard/internal/delivery/http/views"
	"wishboard/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func newTestViews(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.NewRenderer()
	require.NoError(t, err)
	return r
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listResult     []*domain.Event
	listErr        error
	createErr      error
	deleteErr      error
	getResult      *domain.Event
	getErr         error
	lastCreateName string
	lastCreateSlug string
	lastDeleteID   int64
	lastGetSlug    string
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.listResult, f.listErr
}

func (f *fakeEventService) CreateEvent(ctx context.Context, name, slug string) (*domain.Event, error) {
	f.lastCreateName, f.lastCreateSlug = name, slug
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: 1, Name: name, Slug: slug}, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id int64) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.lastGetSlug = slug
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

// fakeWishService implements domain.WishService for handler tests.
type fakeWishService struct {
	submitErr      error
	deleteErr      error
	listEvent      *domain.Event
	listWishes     []*domain.Wish
	listErr        error
	summary        *domain.Summary
	summaryErr     error
	feed           *domain.WishFeed
	feedErr        error
	lastSlug       string
	lastSender     string
	lastMessage    string
	lastDeleteWish int64
}

func (f *fakeWishService) SubmitWish(ctx context.Context, slug, senderName, message string) (*domain.Wish, error) {
	f.lastSlug, f.lastSender, f.lastMessage = slug, senderName, message
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &domain.Wish{ID: 1, SenderName: senderName, Message: message}, nil
}

func (f *fakeWishService) DeleteWish(ctx context.Context, slug string, wishID int64) error {
	f.lastSlug, f.lastDeleteWish = slug, wishID
	return f.deleteErr
}

func (f *fakeWishService) ListWishes(ctx context.Context, slug string) (*domain.Event, []*domain.Wish, error) {
	f.lastSlug = slug
	if f.listErr != nil {
		return nil, nil, f.listErr
	}
	return f.listEvent, f.listWishes, nil
}

func (f *fakeWishService) GetSummary(ctx context.Context, slug string) (*domain.Summary, error) {
	f.lastSlug = slug
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	return f.summary, nil
}

func (f *fakeWishService) GetAllWishes(ctx context.Context, slug string) (*domain.WishFeed, error) {
	f.lastSlug = slug
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.feed, nil
}

type fakeExportService struct {
	export   *domain.Export
	err      error
	lastSlug string
}

func (f *fakeExportService) ExportWishesCSV(ctx context.Context, slug string) (*domain.Export, error) {
	f.lastSlug = slug
	return f.export, f.err
}

type fakeQR struct {
	lastURL string
	err     error
}

func (f *fakeQR) Generate(url string) ([]byte, error) {
	f.lastURL = url
	if f.err != nil {
		return nil, f.err
	}
	return []byte("\x89PNG fake"), nil
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

// postForm builds a form POST request with the given path values set.
func postForm(target string, form string, pathValues map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

// noticeFrom decodes the notice cookie set on a response.
func noticeFrom(t *testing.T, rr *httptest.ResponseRecorder) *helpers.Notice {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == helpers.NoticeCookieName {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(c)
			return helpers.PopNotice(httptest.NewRecorder(), req)
		}
	}
	return nil
}
