package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blackos-labs/agency-backoffice/internal/auth"
	"github.com/blackos-labs/agency-backoffice/internal/http/handlers"
	httpmiddleware "github.com/blackos-labs/agency-backoffice/internal/http/middleware"
	"github.com/blackos-labs/agency-backoffice/internal/leads"
	"github.com/blackos-labs/agency-backoffice/internal/meetings"
	"github.com/blackos-labs/agency-backoffice/internal/observability/metrics"
	"github.com/blackos-labs/agency-backoffice/internal/webui"
	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	LeadsHandler    *leads.Handler
	MeetingsHandler *meetings.Handler
	AuthHandler     *auth.Handler
	Dashboard       *handlers.DashboardHandler
	Pages           *webui.Handler

	SessionSecret      string
	MetricsHandler     http.Handler
	HTTPMetrics        *metrics.HTTPMetrics
	CORSAllowedOrigins []string
	APIRatePerSecond   float64
	APIRateBurst       int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Middleware)
	}

	// Public pages and health checks
	r.Group(func(public chi.Router) {
		public.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.Pages != nil {
			public.Get("/", cfg.Pages.Landing)
			public.Get("/login", cfg.Pages.Login)
		}
	})

	// JSON API
	r.Route("/api", func(api chi.Router) {
		if cfg.APIRatePerSecond > 0 {
			api.Use(httpmiddleware.RateLimit(cfg.APIRatePerSecond, cfg.APIRateBurst))
		}

		if cfg.LeadsHandler != nil {
			api.Route("/leads", func(r chi.Router) {
				r.Get("/", cfg.LeadsHandler.List)
				r.Post("/", cfg.LeadsHandler.Create)
				r.Put("/{id}", cfg.LeadsHandler.Update)
				r.Delete("/{id}", cfg.LeadsHandler.Delete)
			})
		}

		if cfg.MeetingsHandler != nil {
			api.Route("/meetings", func(r chi.Router) {
				r.Get("/", cfg.MeetingsHandler.List)
				r.Post("/", cfg.MeetingsHandler.Create)
				r.Patch("/{id}", cfg.MeetingsHandler.Patch)
				r.Delete("/{id}", cfg.MeetingsHandler.Delete)
			})
		}

		if cfg.AuthHandler != nil {
			api.Post("/signup", cfg.AuthHandler.Signup)
			api.Post("/login", cfg.AuthHandler.Login)
			api.Post("/logout", cfg.AuthHandler.Logout)
		}
	})

	// Back office, gated by the login cookie
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(httpmiddleware.Session(cfg.SessionSecret))

		if cfg.Pages != nil {
			admin.Get("/", cfg.Pages.AdminDashboard)
			admin.Get("/leads", cfg.Pages.AdminLeads)
			admin.Get("/meetings", cfg.Pages.AdminMeetings)
		}
		if cfg.Dashboard != nil {
			admin.Get("/api/dashboard", cfg.Dashboard.GetDashboard)
		}
	})

	return r
}
