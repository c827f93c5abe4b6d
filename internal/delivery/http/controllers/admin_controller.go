package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"wishboard/internal/delivery/http/helpers"
	"wishboard/internal/delivery/http/views"
	"wishboard/internal/domain"
)

const msgWishDeleted = "Wish deleted."

// AdminController serves the organizer pages of one event.
type AdminController struct {
	Logger  *slog.Logger
	Wishes  domain.WishService
	Exports domain.ExportService
	Views   PageRenderer
}

func NewAdminController(logger *slog.Logger, wishes domain.WishService, exports domain.ExportService, renderer PageRenderer) *AdminController {
	return &AdminController{
		Logger:  logger,
		Wishes:  wishes,
		Exports: exports,
		Views:   renderer,
	}
}

// View lists an event's wishes newest first.
func (c *AdminController) View(w http.ResponseWriter, r *http.Request) {
	event, wishes, err := c.Wishes.ListWishes(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(w, r, c.Logger, c.Views, "Event not found.")
			return
		}
		internalError(w, r, c.Logger, err)
		return
	}
	renderPage(w, r, c.Logger, c.Views, http.StatusOK, views.PageAdmin, event.Name+" admin", views.AdminContent{Event: event, Wishes: wishes})
}

// Export downloads the event's wishes as CSV.
func (c *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	export, err := c.Exports.ExportWishesCSV(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(w, r, c.Logger, c.Views, "Event not found.")
			return
		}
		internalError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}

// DeleteWish removes one wish of the event and returns to the admin page.
func (c *AdminController) DeleteWish(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	wishID, ok := parseID(r.PathValue("wishID"))
	if !ok {
		renderNotFound(w, r, c.Logger, c.Views, "Wish not found.")
		return
	}
	if err := c.Wishes.DeleteWish(r.Context(), slug, wishID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(w, r, c.Logger, c.Views, "Wish not found.")
			return
		}
		internalError(w, r, c.Logger, err)
		return
	}
	helpers.RedirectWithNotice(w, r, "/admin/"+url.PathEscape(slug), helpers.NoticeSuccess, msgWishDeleted)
}
