package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingTokenSecret is returned when AUTHOPS_TOKEN_SECRET is not
// set. There is no safe default for a signing key.
var ErrMissingTokenSecret = errors.New("config: AUTHOPS_TOKEN_SECRET is required")

// Config holds the daemon configuration.
type Config struct {
	// Addr is the listen address.
	Addr string

	// TokenSecretSpec is the unresolved signing-key source spec
	// (env:NAME, file:/path, literal:..., random). The daemon resolves
	// it through the secret package.
	TokenSecretSpec string

	TokenTTL    time.Duration
	TokenIssuer string

	RateLimitMax    int
	RateLimitWindow time.Duration

	BcryptCost int

	LogLevel    string
	CORSOrigins []string

	TraceExporter  string
	MetricExporter string

	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first, if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secretSpec := getEnv("AUTHOPS_TOKEN_SECRET", "")
	if secretSpec == "" {
		return nil, ErrMissingTokenSecret
	}

	ttlSeconds, err := getEnvInt("AUTHOPS_TOKEN_TTL_SECONDS", 900)
	if err != nil {
		return nil, err
	}
	rateMax, err := getEnvInt("AUTHOPS_RATE_LIMIT_MAX", 5)
	if err != nil {
		return nil, err
	}
	rateWindowSeconds, err := getEnvInt("AUTHOPS_RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	bcryptCost, err := getEnvInt("AUTHOPS_BCRYPT_COST", 0)
	if err != nil {
		return nil, err
	}
	shutdownSeconds, err := getEnvInt("AUTHOPS_SHUTDOWN_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:            getEnv("AUTHOPS_ADDR", ":8080"),
		TokenSecretSpec: secretSpec,
		TokenTTL:        time.Duration(ttlSeconds) * time.Second,
		TokenIssuer:     getEnv("AUTHOPS_TOKEN_ISSUER", "authops"),
		RateLimitMax:    rateMax,
		RateLimitWindow: time.Duration(rateWindowSeconds) * time.Second,
		BcryptCost:      bcryptCost,
		LogLevel:        getEnv("AUTHOPS_LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("AUTHOPS_CORS_ORIGINS", "*")),
		TraceExporter:   getEnv("AUTHOPS_TRACE_EXPORTER", "none"),
		MetricExporter:  getEnv("AUTHOPS_METRIC_EXPORTER", "none"),
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
	}, nil
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s: %w", key, err)
	}
	return value, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
