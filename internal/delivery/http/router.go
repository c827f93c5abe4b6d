package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "wishboard/docs"
	"wishboard/internal/delivery/http/controllers"
	"wishboard/internal/delivery/http/middleware"
	"wishboard/internal/metrics"
)

// Handlers groups the controllers mounted by NewRouter.
type Handlers struct {
	Events   *controllers.EventController
	Wishes   *controllers.WishController
	Admin    *controllers.AdminController
	API      *controllers.APIController
	Health   *controllers.HealthController
	NotFound http.Handler
}

// NewRouter initializes the HTTP router with all application routes and wraps
// it with request logging and metrics. CORS applies to /api only.
func NewRouter(logger *slog.Logger, h Handlers, m *metrics.Metrics, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", h.Events.Index)
	mux.HandleFunc("POST /create_event", h.Events.CreateEvent)
	mux.HandleFunc("POST /delete_event/{eventID}", h.Events.DeleteEvent)
	mux.HandleFunc("GET /wish/{slug}", h.Wishes.WishForm)
	mux.HandleFunc("POST /wish/{slug}/submit", h.Wishes.SubmitWish)
	mux.HandleFunc("GET /qr/{file}", h.Wishes.QRCode)
	mux.HandleFunc("GET /display/{slug}", h.Wishes.Display)

	// Admin
	mux.HandleFunc("GET /admin/{slug}", h.Admin.View)
	mux.HandleFunc("GET /admin/{slug}/export", h.Admin.Export)
	mux.HandleFunc("POST /admin/{slug}/delete/{wishID}", h.Admin.DeleteWish)

	// API
	mux.Handle("GET /api/{slug}/summary", middleware.CORS(allowedOrigins, http.HandlerFunc(h.API.Summary)))
	mux.Handle("GET /api/{slug}/wishes", middleware.CORS(allowedOrigins, http.HandlerFunc(h.API.Wishes)))
	mux.Handle("OPTIONS /api/{slug}/{resource}", middleware.CORS(allowedOrigins, http.NotFoundHandler()))

	// Ops
	mux.HandleFunc("GET /healthz", h.Health.Health)
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	if h.NotFound != nil {
		mux.Handle("/", h.NotFound)
	}

	return middleware.LoggingMiddleware(logger, middleware.MetricsMiddleware(m, mux, mux))
}
