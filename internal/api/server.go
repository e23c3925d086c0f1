package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ernestofreyreg/law-api/internal/api/handler"
	mw "github.com/ernestofreyreg/law-api/internal/api/middleware"
	"github.com/ernestofreyreg/law-api/internal/api/response"
	"github.com/ernestofreyreg/law-api/internal/config"
	"github.com/ernestofreyreg/law-api/internal/core"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	services *core.Services
	pool     *pgxpool.Pool
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Server {
	services := core.NewServices(pool, cfg.JWTSecret, cfg.JWTExpiry)

	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		services: services,
		pool:     pool,
		cfg:      cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(mw.Recovery(s.logger, s.cfg.Production()))
	s.router.Use(mw.Metrics)
	s.router.Use(mw.CORS(s.cfg.CORSOrigins))
}

func (s *Server) setupRoutes() {
	// Prometheus metrics
	s.router.Handle("/metrics", promhttp.Handler())

	// Health checks
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	s.router.Route("/api", func(r chi.Router) {
		auth := handler.NewAuth(s.services.Auth, s.services.User)

		// Public auth routes
		r.Post("/auth/signup", auth.Signup)
		r.Post("/auth/login", auth.Login)

		// Everything else requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(s.services.Auth, s.services.User))

			r.Get("/auth/me", auth.Me)

			customer := handler.NewCustomer(s.services.Customer)
			r.Get("/customers", customer.List)
			r.Post("/customers", customer.Create)
			r.Get("/customers/{customerID}", customer.Get)
			r.Put("/customers/{customerID}", customer.Update)
			r.Delete("/customers/{customerID}", customer.Delete)

			matter := handler.NewMatter(s.services.Matter, s.services.Customer)
			r.Get("/customers/{customerID}/matters", matter.List)
			r.Post("/customers/{customerID}/matters", matter.Create)
			r.Get("/customers/{customerID}/matters/{matterID}", matter.Get)
			r.Put("/customers/{customerID}/matters/{matterID}", matter.Update)

			stats := handler.NewStats(s.services.Stats)
			r.Get("/stats", stats.Get)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		response.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
