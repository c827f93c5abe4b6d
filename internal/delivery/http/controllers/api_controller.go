package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"wishboard/internal/delivery/http/helpers"
	"wishboard/internal/domain"
)

// SummarySuccessResponse is the success response envelope for GET /api/{slug}/summary (200).
type SummarySuccessResponse struct {
	Data  *domain.Summary   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// WishFeedSuccessResponse is the success response envelope for GET /api/{slug}/wishes (200).
type WishFeedSuccessResponse struct {
	Data  *domain.WishFeed  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// APIController serves the read-only JSON API.
type APIController struct {
	Logger  *slog.Logger
	Service domain.WishService
}

func NewAPIController(logger *slog.Logger, svc domain.WishService) *APIController {
	return &APIController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *APIController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
}

// Summary godoc
// @Summary Event summary
// @Description Returns the event name, slug, total number of wishes and the five most recent wishes (newest first, RFC 3339 timestamps).
// @Tags api
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.SummarySuccessResponse "data contains the summary"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/{slug}/summary [get]
func (c *APIController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Service.GetSummary(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// Wishes godoc
// @Summary All wishes of an event
// @Description Returns every wish of the event, oldest first, with HH:MM (UTC) times. Used by the live display page.
// @Tags api
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.WishFeedSuccessResponse "data contains the wish feed"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/{slug}/wishes [get]
func (c *APIController) Wishes(w http.ResponseWriter, r *http.Request) {
	feed, err := c.Service.GetAllWishes(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, feed)
}

// Pinger reports whether the database is reachable. Implemented by *bun.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the data returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthController reports liveness of the service and its database.
type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{Logger: logger, DB: db}
}

// Health godoc
// @Summary Health check
// @Description Pings the database.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status: ok"
// @Failure 503 {object} helpers.APIResponse "error.code: unavailable"
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unavailable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
