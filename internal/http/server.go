// Package http exposes the travel-planning endpoints over a plain
// net/http mux with a composed middleware chain in front.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ReyhanHussain/YatraGPT/internal/config"
	"github.com/ReyhanHussain/YatraGPT/internal/http/middleware"
	"github.com/ReyhanHussain/YatraGPT/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      *config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      cfg,
		handler:     handler,
		middlewares: middlewares,
		srv:         nil,
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("POST /v1/itinerary", s.handler.HandleItinerary)
	mux.HandleFunc("POST /v1/itinerary/pdf", s.handler.HandleItineraryPDF)
	mux.HandleFunc("POST /v1/recommendations", s.handler.HandleRecommendations)
	mux.HandleFunc("POST /v1/chat", s.handler.HandleChat)
	mux.HandleFunc("GET /v1/gems", s.handler.HandleListGems)
	mux.HandleFunc("POST /v1/gems/{id}/views", s.handler.HandleGemViews)
	mux.HandleFunc("POST /v1/gems/{id}/favorite", s.handler.HandleGemFavorite)
	mux.HandleFunc("GET /v1/profiles", s.handler.HandleListProfiles)
	mux.HandleFunc("GET /v1/profiles/{id}", s.handler.HandleGetProfile)
	mux.HandleFunc("POST /v1/profiles/{id}/rating", s.handler.HandleProfileRating)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)

	// Apply middleware chain.
	handlerWithMiddleware := s.middlewares(mux)

	// Create server with timeouts. The write timeout has to cover a full
	// typing replay over SSE.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      handlerWithMiddleware,
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
