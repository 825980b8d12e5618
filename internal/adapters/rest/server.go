package rest

import (
	"context"
	"fmt"
	"net/http"
	core_port "sharespace/internal/core/port"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// Server - REST API сервиса объявлений.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(cfg ServerConfig, handlers *ListingsHandler, auth *AuthMiddleware, baseLogger core_port.LoggerPort) *Server {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, handlers, auth, baseLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &Server{
		httpServer: srv,
		logger:     baseLogger.WithFields(core_port.Fields{"component": "rest_server"}),
	}
}

func NewRouter(cfg ServerConfig, handlers *ListingsHandler, auth *AuthMiddleware, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", TraceIDHeader, SearchSessionHeader},
		ExposedHeaders:   []string{TraceIDHeader, "Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Route("/api/v1/listings", func(r chi.Router) {
		r.Get("/", handlers.SearchListings)
		r.Get("/featured", handlers.GetFeaturedListings)
		r.Get("/{listingID}", handlers.GetListing)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Post("/", handlers.CreateListing)
			r.Put("/{listingID}", handlers.UpdateListing)
			r.Delete("/{listingID}", handlers.DeleteListing)
		})
	})

	r.Route("/api/v1/me/listings", func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Get("/", handlers.GetMyListings)
		r.Delete("/", handlers.DeleteMyListings)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
