package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"property-backoffice/internal/config"
	"property-backoffice/internal/handler"
	"property-backoffice/internal/middleware"
	"property-backoffice/internal/model"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Property  *handler.PropertyHandler
	Lease     *handler.LeaseHandler
	Invoice   *handler.InvoiceHandler
	Person    *handler.PersonHandler
	Dashboard *handler.DashboardHandler
	Audit     *handler.AuditHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", health)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", h.Auth.Login)
			auth.With(authMiddleware.RequireAuth).Get("/profile", h.Auth.Profile)
		})

		api.With(authMiddleware.RequireAuth).Get("/properties", h.Property.List)
		api.With(authMiddleware.RequireAuth).Post("/properties", h.Property.Create)
		api.With(authMiddleware.RequireAuth).Get("/properties/available", h.Property.Available)

		api.With(authMiddleware.RequireAuth).Get("/leases", h.Lease.List)
		api.With(authMiddleware.RequireAuth).Post("/leases", h.Lease.Create)

		api.With(authMiddleware.RequireAuth).Get("/invoices", h.Invoice.List)
		api.With(authMiddleware.RequireAuth).Post("/invoices", h.Invoice.Create)
		api.With(authMiddleware.RequireAuth).Put("/invoices/{id}", h.Invoice.Settle)

		api.With(authMiddleware.RequireAuth).Get("/people", h.Person.List)
		api.With(authMiddleware.RequireAuth).Post("/people", h.Person.Create)

		api.With(authMiddleware.RequireAuth).Get("/dashboard/stats", h.Dashboard.Stats)
		api.With(authMiddleware.RequireAuth).Get("/dashboard/recent-properties", h.Dashboard.RecentProperties)

		api.With(authMiddleware.RequireAuth).Get("/audit", h.Audit.List)
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data: map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}
