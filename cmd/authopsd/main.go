package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/authops/config"
	"github.com/jonwraymond/authops/credential"
	"github.com/jonwraymond/authops/engine"
	"github.com/jonwraymond/authops/health"
	"github.com/jonwraymond/authops/httpapi"
	"github.com/jonwraymond/authops/observe"
	"github.com/jonwraymond/authops/post"
	"github.com/jonwraymond/authops/secret"
)

const (
	serviceName    = "authops"
	serviceVersion = "0.1.0"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "authopsd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: serviceName,
		Version:     serviceVersion,
		Tracing: observe.TracingConfig{
			Enabled:   exporterEnabled(cfg.TraceExporter),
			Exporter:  cfg.TraceExporter,
			SamplePct: 1.0,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  exporterEnabled(cfg.MetricExporter),
			Exporter: cfg.MetricExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   cfg.LogLevel,
		},
	})
	if err != nil {
		return err
	}
	logger := obs.Logger()

	key, err := secret.Load(cfg.TokenSecretSpec)
	if err != nil {
		return err
	}
	if cfg.TokenSecretSpec == secret.SourceRandom {
		logger.Warn(ctx, "signing key is ephemeral; issued tokens die with this process")
	}

	flowMetrics, err := observe.NewFlowMetrics(obs.Meter())
	if err != nil {
		return err
	}

	// The stores are owned here so health checks can watch them
	// alongside the engine.
	identities := credential.NewMemoryStore(credential.NewBcryptHasher(cfg.BcryptCost))
	posts := post.NewMemoryStore()

	eng, err := engine.New(engine.Config{
		TokenSecret:     key,
		TokenTTL:        cfg.TokenTTL,
		TokenIssuer:     cfg.TokenIssuer,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		BcryptCost:      cfg.BcryptCost,
		Identities:      identities,
		Posts:           posts,
		Logger:          logger,
		Metrics:         flowMetrics,
		Tracer:          observe.NewTracer(obs.Tracer()),
	})
	if err != nil {
		return err
	}

	agg := health.NewAggregator()
	agg.Register("token", health.NewTokenChecker(eng.Tokens()))
	agg.Register("memory", health.NewMemoryChecker(health.MemoryCheckerConfig{}))
	agg.Register("identities", storeChecker("identities", identities.Len))
	agg.Register("posts", storeChecker("posts", posts.Len))

	routerConfig := httpapi.Config{
		Engine:      eng,
		Health:      agg,
		Observer:    obs,
		CORSOrigins: cfg.CORSOrigins,
	}
	if cfg.MetricExporter == "prometheus" {
		routerConfig.Metrics = promhttp.Handler()
	}

	router, err := httpapi.NewRouter(routerConfig)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(gctx, "server listening",
			observe.Field{Key: "addr", Value: cfg.Addr},
			observe.Field{Key: "version", Value: serviceVersion},
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info(context.Background(), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return obs.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// exporterEnabled reports whether an exporter name asks for a real
// exporter.
func exporterEnabled(name string) bool {
	return name != "" && name != "none"
}

// storeChecker reports a store's size; in-memory stores only grow, so
// the count is worth surfacing on /health.
func storeChecker(name string, size func() int) health.Checker {
	return health.NewCheckerFunc(name, func(context.Context) health.Result {
		return health.Healthy(fmt.Sprintf("%d records", size())).
			WithDetails(map[string]any{"records": size()})
	})
}
