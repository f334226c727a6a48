package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gographql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"medialib-backend/application/ports"
	"medialib-backend/application/services"
	"medialib-backend/infrastructure/config"
	"medialib-backend/interfaces/http/handlers"
	"medialib-backend/interfaces/http/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	schema    *gographql.Schema
	uploadSvc *services.UploadService
	resetter  ports.StoreResetter
	cfg       *config.Config
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	schema *gographql.Schema,
	uploadSvc *services.UploadService,
	resetter ports.StoreResetter,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		schema:    schema,
		uploadSvc: uploadSvc,
		resetter:  resetter,
		cfg:       cfg,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// GraphQL endpoint
	router.Handle("/graphql", &relay.Handler{Schema: rt.schema})

	// File uploads go through a plain multipart endpoint rather than a
	// GraphQL multipart extension
	uploadHandler := handlers.NewUploadHandler(rt.uploadSvc, int64(rt.cfg.UploadMaxFileSize), rt.logger)
	router.Post("/upload", uploadHandler.ServeHTTP)

	// Fixture reset is a development side channel, never exposed in
	// production
	if !rt.cfg.IsProduction() {
		resetHandler := handlers.NewResetHandler(rt.resetter, rt.logger)
		router.Post("/reset", resetHandler.ServeHTTP)
	}

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
