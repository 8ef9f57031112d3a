package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jonwraymond/authops/engine"
	"github.com/jonwraymond/authops/health"
	"github.com/jonwraymond/authops/observe"
)

// Config configures the router.
type Config struct {
	// Engine serves every flow. Required.
	Engine *engine.Engine

	// Health enables /healthz, /readyz, and /health when set.
	Health *health.Aggregator

	// Observer wires the request middleware (span, counters, request
	// log) when set.
	Observer observe.Observer

	// CORSOrigins lists the origins allowed to call the API.
	// Default: ["*"]
	CORSOrigins []string

	// Metrics is mounted at GET /metrics when set; the daemon passes
	// promhttp's handler here when the prometheus exporter is on.
	Metrics http.Handler
}

// NewRouter builds the service's chi router.
func NewRouter(config Config) (*chi.Mux, error) {
	if config.Engine == nil {
		return nil, ErrNilEngine
	}
	if len(config.CORSOrigins) == 0 {
		config.CORSOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	if config.Observer != nil {
		mw, err := observe.NewHTTPMiddleware(config.Observer)
		if err != nil {
			return nil, err
		}
		r.Use(mw.Wrap)
	}

	h := &handler{engine: config.Engine}

	r.Get("/", h.root)
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Get("/me", h.me)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Post("/", h.createPost)
		r.Put("/{id}", h.updatePost)
		r.Delete("/{id}", h.deletePost)
	})

	if config.Health != nil {
		r.Get("/healthz", health.LivenessHandler())
		r.Get("/readyz", health.ReadinessHandler(config.Health))
		r.Get("/health", health.DetailedHandler(config.Health))
	}
	if config.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", config.Metrics)
	}

	return r, nil
}
