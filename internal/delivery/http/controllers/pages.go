package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"wishboard/internal/delivery/http/helpers"
	"wishboard/internal/delivery/http/views"
)

// PageRenderer renders a named HTML page. Implemented by *views.Renderer.
type PageRenderer interface {
	Render(w http.ResponseWriter, status int, name string, page views.Page) error
}

// renderPage consumes the pending notice and renders the page. Render failures
// become a plain 500.
func renderPage(w http.ResponseWriter, r *http.Request, logger *slog.Logger, renderer PageRenderer, status int, name, title string, content any) {
	page := views.Page{
		Title:   title,
		Notice:  helpers.PopNotice(w, r),
		Content: content,
	}
	if err := renderer.Render(w, status, name, page); err != nil {
		logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "method", r.Method, "page", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request, logger *slog.Logger, renderer PageRenderer, message string) {
	renderPage(w, r, logger, renderer, http.StatusNotFound, views.PageNotFound, "Not found", views.NotFoundContent{Message: message})
}

func internalError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// parseID parses a positive integer path value.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NotFoundPage serves the HTML 404 page for unmatched routes.
type NotFoundPage struct {
	Logger *slog.Logger
	Views  PageRenderer
}

func (p *NotFoundPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	renderNotFound(w, r, p.Logger, p.Views, "The page you requested does not exist.")
}
