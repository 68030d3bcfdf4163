package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/healthkiosk/platform/internal/http/handlers"
	httpmiddleware "github.com/healthkiosk/platform/internal/http/middleware"
	"github.com/healthkiosk/platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Kiosk              *handlers.KioskHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
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

	r.Get("/health", cfg.Kiosk.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Get("/catalog", cfg.Kiosk.GetCatalog)

	r.Route("/kiosk/{deviceID}", func(k chi.Router) {
		k.Get("/state", cfg.Kiosk.GetState)
		k.Post("/language", cfg.Kiosk.SelectLanguage)
		k.Post("/login", cfg.Kiosk.Login)
		k.Post("/patient-details", cfg.Kiosk.SubmitPatientDetails)
		k.Post("/symptoms", cfg.Kiosk.SubmitSymptoms)
		k.Get("/guidance", cfg.Kiosk.GetGuidance)
		k.Get("/facilities", cfg.Kiosk.ListFacilities)
		k.Post("/facility", cfg.Kiosk.SelectFacility)
		k.Post("/appointment", cfg.Kiosk.BookAppointment)
		k.Post("/next", cfg.Kiosk.Advance)
		k.Post("/back", cfg.Kiosk.Back)
		k.Post("/reset", cfg.Kiosk.Reset)
	})

	return r
}
