// Package api provides the HTTP API server and handlers for the review
// reporting dashboard.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/auth"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/config"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/http/response"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/service"
	"github.com/Iamhuzaifasabahuddin/BlinkDigitally-sub000/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	reviewService    *service.ReviewService
	printingService  *service.PrintingService
	copyrightService *service.CopyrightService
	authService      *service.AuthService
	tokens           *auth.TokenService
	validator        *validation.Validator
	cfg              *config.Config
	router           *chi.Mux
	logger           *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	reviewService *service.ReviewService,
	printingService *service.PrintingService,
	copyrightService *service.CopyrightService,
	authService *service.AuthService,
	tokens *auth.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) *Server {
	s := &Server{
		reviewService:    reviewService,
		printingService:  printingService,
		copyrightService: copyrightService,
		authService:      authService,
		tokens:           tokens,
		validator:        validation.New(),
		cfg:              cfg,
		router:           chi.NewRouter(),
		logger:           logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints (public).
		r.Post("/auth/login", s.handleLogin)

		// Review reporting (require auth).
		r.Route("/reviews", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetReviews)
			r.Get("/managers", s.handleGetManagers)

			// Delivery is restricted to administrators.
			r.With(s.requireAdmin).Post("/send", s.handleSendReview)
			r.With(s.requireAdmin).Post("/bulk", s.handleBulkSend)
		})

		// Worksheet rollups (require auth).
		r.Route("/printing", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetPrinting)
		})
		r.Route("/copyright", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleGetCopyright)
		})

		// Cache control (admin only).
		r.With(s.requireAuth, s.requireAdmin).Post("/cache/invalidate", s.handleInvalidateCache)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
