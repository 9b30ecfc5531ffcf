package rest

import (
	"net/http"

	"github.com/heartmarshall/imagecraft-backend/internal/transport/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Sessions *SessionHandler
	Images   *ImageHandler
	Me       *MeHandler
	// Metrics is served under MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// RouterConfig configures the middleware stack around the routes.
type RouterConfig struct {
	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// Protected wraps routes that need a signed-in caller, after Global.
	Protected []middleware.Middleware
}

// NewRouter builds the HTTP routing table.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	protect := middleware.Chain(cfg.Protected...)
	private := func(fn http.HandlerFunc) http.Handler { return protect(fn) }

	// ----------------------------------------------------------------
	// Public
	// ----------------------------------------------------------------

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, h.Metrics)
	}
	mux.HandleFunc("GET /api/images/{id}", h.Images.Get)

	// ----------------------------------------------------------------
	// Signed-in
	// ----------------------------------------------------------------

	mux.Handle("GET /api/me", private(h.Me.Profile))
	mux.Handle("GET /api/me/credits", private(h.Me.Credits))

	mux.Handle("GET /api/images", private(h.Images.List))
	mux.Handle("DELETE /api/images/{id}", private(h.Images.Delete))

	mux.Handle("POST /api/sessions", private(h.Sessions.Start))
	mux.Handle("GET /api/sessions/{id}", private(h.Sessions.Get))
	mux.Handle("DELETE /api/sessions/{id}", private(h.Sessions.Close))
	mux.Handle("POST /api/sessions/{id}/edits", private(h.Sessions.Edit))
	mux.Handle("POST /api/sessions/{id}/title", private(h.Sessions.SetTitle))
	mux.Handle("POST /api/sessions/{id}/aspect-ratio", private(h.Sessions.SelectAspectRatio))
	mux.Handle("POST /api/sessions/{id}/upload", private(h.Sessions.Upload))
	mux.Handle("POST /api/sessions/{id}/apply", private(h.Sessions.Apply))
	mux.Handle("POST /api/sessions/{id}/save", private(h.Sessions.Save))

	return middleware.Chain(cfg.Global...)(mux)
}
