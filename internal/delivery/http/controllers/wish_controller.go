package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"wishboard/internal/delivery/http/helpers"
	"wishboard/internal/delivery/http/views"
	"wishboard/internal/domain"
)

const (
	msgWishEmpty = "Your wish cannot be empty."
	msgWishSaved = "Thank you! Your wish has been saved."
)

// WishController serves the guest-facing pages: wish form, QR code and live display.
type WishController struct {
	Logger        *slog.Logger
	Events        domain.EventService
	Wishes        domain.WishService
	QR            domain.QRGenerator
	Views         PageRenderer
	PublicBaseURL string
}

func NewWishController(logger *slog.Logger,
	events domain.EventService,
	wishes domain.WishService,
	qr domain.QRGenerator,
	renderer PageRenderer,
	publicBaseURL string,
) *WishController {
	return &WishController{
		Logger:        logger,
		Events:        events,
		Wishes:        wishes,
		QR:            qr,
		Views:         renderer,
		PublicBaseURL: publicBaseURL,
	}
}

func wishFormPath(slug string) string {
	return "/wish/" + url.PathEscape(slug)
}

// lookupEvent resolves the slug path value, rendering 404 or 500 itself on failure.
func (c *WishController) lookupEvent(w http.ResponseWriter, r *http.Request, slug string) (*domain.Event, bool) {
	event, err := c.Events.GetEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(w, r, c.Logger, c.Views, "Event not found.")
			return nil, false
		}
		internalError(w, r, c.Logger, err)
		return nil, false
	}
	return event, true
}

// WishForm renders the public form for one event.
func (c *WishController) WishForm(w http.ResponseWriter, r *http.Request) {
	event, ok := c.lookupEvent(w, r, r.PathValue("slug"))
	if !ok {
		return
	}
	renderPage(w, r, c.Logger, c.Views, http.StatusOK, views.PageWish, event.Name, views.EventContent{Event: event})
}

// SubmitWish stores a wish and redirects back to the form.
func (c *WishController) SubmitWish(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithNotice(w, r, wishFormPath(slug), helpers.NoticeDanger, msgWishEmpty)
		return
	}
	_, err := c.Wishes.SubmitWish(r.Context(), slug, r.PostForm.Get("sender_name"), r.PostForm.Get("message"))
	switch {
	case err == nil:
		helpers.RedirectWithNotice(w, r, wishFormPath(slug), helpers.NoticeSuccess, msgWishSaved)
	case errors.Is(err, domain.ErrNotFound):
		renderNotFound(w, r, c.Logger, c.Views, "Event not found.")
	case errors.Is(err, domain.ErrValidation):
		helpers.RedirectWithNotice(w, r, wishFormPath(slug), helpers.NoticeDanger, msgWishEmpty)
	default:
		internalError(w, r, c.Logger, err)
	}
}

// QRCode serves a PNG QR code that encodes the absolute wish form URL.
// The route captures "<slug>.png" as a single segment.
func (c *WishController) QRCode(w http.ResponseWriter, r *http.Request) {
	slug, ok := strings.CutSuffix(r.PathValue("file"), ".png")
	if !ok || slug == "" {
		renderNotFound(w, r, c.Logger, c.Views, "Event not found.")
		return
	}
	event, ok := c.lookupEvent(w, r, slug)
	if !ok {
		return
	}
	target := helpers.BaseURL(r, c.PublicBaseURL) + wishFormPath(event.Slug)
	png, err := c.QR.Generate(target)
	if err != nil {
		internalError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="`+event.Slug+`.png"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// Display renders the live wall that polls the wishes API.
func (c *WishController) Display(w http.ResponseWriter, r *http.Request) {
	event, ok := c.lookupEvent(w, r, r.PathValue("slug"))
	if !ok {
		return
	}
	renderPage(w, r, c.Logger, c.Views, http.StatusOK, views.PageDisplay, event.Name, views.EventContent{Event: event})
}
