package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"wishboard/internal/delivery/http/helpers"
	"wishboard/internal/delivery/http/views"
	"wishboard/internal/domain"
)

// Notice texts shown after event actions.
const (
	msgEventInputRequired = "Name and slug are required (e.g. john-25)."
	msgSlugTaken          = "Slug already exists. Please choose another one."
	msgEventCreated       = "Event created."
	msgEventDeleted       = "Event deleted."
)

// EventController serves the event list and event create/delete forms.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Views   PageRenderer
}

func NewEventController(logger *slog.Logger, svc domain.EventService, renderer PageRenderer) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Views:   renderer,
	}
}

// Index renders all events newest first together with the creation form.
func (c *EventController) Index(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		internalError(w, r, c.Logger, err)
		return
	}
	renderPage(w, r, c.Logger, c.Views, http.StatusOK, views.PageIndex, "Events", views.IndexContent{Events: events})
}

// CreateEvent handles the form post and always redirects back to the index.
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.RedirectWithNotice(w, r, "/", helpers.NoticeDanger, msgEventInputRequired)
		return
	}
	_, err := c.Service.CreateEvent(r.Context(), r.PostForm.Get("name"), r.PostForm.Get("slug"))
	switch {
	case err == nil:
		helpers.RedirectWithNotice(w, r, "/", helpers.NoticeSuccess, msgEventCreated)
	case errors.Is(err, domain.ErrValidation):
		helpers.RedirectWithNotice(w, r, "/", helpers.NoticeDanger, msgEventInputRequired)
	case errors.Is(err, domain.ErrConflict):
		helpers.RedirectWithNotice(w, r, "/", helpers.NoticeDanger, msgSlugTaken)
	default:
		internalError(w, r, c.Logger, err)
	}
}

// DeleteEvent removes an event and all of its wishes.
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("eventID"))
	if !ok {
		renderNotFound(w, r, c.Logger, c.Views, "Event not found.")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(w, r, c.Logger, c.Views, "Event not found.")
			return
		}
		internalError(w, r, c.Logger, err)
		return
	}
	helpers.RedirectWithNotice(w, r, "/", helpers.NoticeSuccess, msgEventDeleted)
}
