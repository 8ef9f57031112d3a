package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonwraymond/authops/engine"
	"github.com/jonwraymond/authops/health"
	"github.com/jonwraymond/authops/observe"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.Config{
		TokenSecret: []byte("test-secret"),
		BcryptCost:  bcrypt.MinCost,
	})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func TestNewRouter_NilEngine(t *testing.T) {
	_, err := NewRouter(Config{})
	if !errors.Is(err, ErrNilEngine) {
		t.Fatalf("want ErrNilEngine, got %v", err)
	}
}

func TestRouter_HealthEndpoints(t *testing.T) {
	agg := health.NewAggregator()
	agg.Register("always", health.NewCheckerFunc("always", func(ctx context.Context) health.Result {
		return health.Healthy("fine")
	}))

	r, err := NewRouter(Config{Engine: testEngine(t), Health: agg})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	rec := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("/healthz = %d %q", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("/readyz = %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("/health = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"always"`) {
		t.Errorf("/health body misses the check: %s", rec.Body.String())
	}
}

func TestRouter_NoHealthWithoutAggregator(t *testing.T) {
	r, err := NewRouter(Config{Engine: testEngine(t)})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	rec := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("/healthz without aggregator = %d, want 404", rec.Code)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r, err := NewRouter(Config{Engine: testEngine(t), Metrics: promhttp.Handler()})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	rec := doJSON(t, r, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("/metrics = %d, want 200", rec.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, err := NewRouter(Config{Engine: testEngine(t), CORSOrigins: []string{"https://blog.example"}})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set("Origin", "https://blog.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://blog.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_WithObserver(t *testing.T) {
	obs, err := observe.NewObserver(context.Background(), observe.Config{ServiceName: "test"})
	if err != nil {
		t.Fatalf("NewObserver: %v", err)
	}
	defer func() { _ = obs.Shutdown(context.Background()) }()

	r, err := NewRouter(Config{Engine: testEngine(t), Observer: obs})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	rec := doJSON(t, r, http.MethodGet, "/", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("root through middleware = %d, want 200", rec.Code)
	}
}
