// Package views renders the server-side HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"wishboard/internal/delivery/http/helpers"
	"wishboard/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names accepted by Renderer.Render.
const (
	PageIndex    = "index"
	PageWish     = "wish"
	PageDisplay  = "display"
	PageAdmin    = "admin"
	PageNotFound = "not_found"
)

var pageNames = []string{PageIndex, PageWish, PageDisplay, PageAdmin, PageNotFound}

// Page is the data handed to every template. Content holds the page-specific data.
type Page struct {
	Title   string
	Notice  *helpers.Notice
	Content any
}

// IndexContent lists events on the home page.
type IndexContent struct {
	Events []*domain.Event
}

// EventContent is used by the wish form and the live display.
type EventContent struct {
	Event *domain.Event
}

// AdminContent is the organizer view of one event.
type AdminContent struct {
	Event  *domain.Event
	Wishes []*domain.Wish
}

// NotFoundContent explains what could not be found.
type NotFoundContent struct {
	Message string
}

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04")
	},
}

// Renderer holds one parsed template set per page, each combined with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses all page templates.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into a buffer and writes it with status.
// Nothing is written if execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
