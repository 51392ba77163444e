package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/rosetta/internal/store"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the REST API server
type Server struct {
	port    int
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server over the given catalog backend
func NewServer(port int, catalog store.Catalog, enableMetrics bool) *Server {
	handler := NewHandler(catalog)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Service banner and health
	router.HandleFunc("/", handler.Root).Methods("GET")
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Resolution endpoint
	router.HandleFunc("/cache", handler.GetCacheEntry).Methods("GET")

	if enableMetrics {
		router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	// API v1 catalog listings
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/teams", handler.ListTeams).Methods("GET")
	api.HandleFunc("/players", handler.ListPlayers).Methods("GET")
	api.HandleFunc("/markets", handler.ListMarkets).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
}

// Router returns the configured handler for serving or tests
func (s *Server) Router() http.Handler {
	return s.server.Handler
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
