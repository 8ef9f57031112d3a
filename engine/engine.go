package engine

import (
	"context"
	"time"

	"github.com/jonwraymond/authops/credential"
	"github.com/jonwraymond/authops/observe"
	"github.com/jonwraymond/authops/post"
	"github.com/jonwraymond/authops/ratelimit"
	"github.com/jonwraymond/authops/token"
)

// decoyPassword seeds the hash that Login verifies against when the
// username is unknown, so that path costs one bcrypt comparison like
// the known-user path does.
const decoyPassword = "authops.login.decoy"

// Config configures the engine.
type Config struct {
	// TokenSecret is the HMAC signing key for bearer tokens. Required.
	TokenSecret []byte

	// TokenTTL is the bearer token lifetime.
	// Default: 15 minutes
	TokenTTL time.Duration

	// TokenIssuer is stamped and enforced as the iss claim when
	// non-empty.
	TokenIssuer string

	// RateLimitMax is the number of login attempts allowed per
	// username per window.
	// Default: 5
	RateLimitMax int

	// RateLimitWindow is the sliding window for login attempts.
	// Default: 60 seconds
	RateLimitWindow time.Duration

	// BcryptCost is the work factor for new password hashes. Zero
	// selects the library default.
	BcryptCost int

	// Identities overrides the identity store.
	// Default: a fresh in-memory store.
	Identities credential.Store

	// Posts overrides the post store.
	// Default: a fresh in-memory store.
	Posts post.Store

	// Now overrides the clock. Used in tests.
	// Default: time.Now
	Now func() time.Time

	// Logger receives flow boundary logs. Default: no-op.
	Logger observe.Logger

	// Metrics receives per-flow counts and durations. Default: no-op.
	Metrics observe.Metrics

	// Tracer opens one span per flow. Default: no-op.
	Tracer observe.Tracer
}

// Engine drives the service's flows over the credential store, token
// service, login rate limiter, and post store. Safe for concurrent
// use.
type Engine struct {
	identities credential.Store
	posts      post.Store
	hasher     credential.Hasher
	tokens     *token.Service
	limiter    *ratelimit.Limiter

	// decoyHash absorbs one bcrypt verification when a login names an
	// unknown user, keeping unknown-user and wrong-password failures
	// at the same cost.
	decoyHash []byte

	logger  observe.Logger
	metrics observe.Metrics
	tracer  observe.Tracer
}

// New creates an engine. Returns token.ErrMissingSecret when
// config.TokenSecret is empty.
func New(config Config) (*Engine, error) {
	if config.Now == nil {
		config.Now = time.Now
	}

	tokens, err := token.NewService(token.Config{
		Secret: config.TokenSecret,
		TTL:    config.TokenTTL,
		Issuer: config.TokenIssuer,
		Now:    config.Now,
	})
	if err != nil {
		return nil, err
	}

	hasher := credential.NewBcryptHasher(config.BcryptCost)
	decoyHash, err := hasher.Hash(decoyPassword)
	if err != nil {
		return nil, err
	}

	identities := config.Identities
	if identities == nil {
		identities = credential.NewMemoryStore(hasher, credential.WithClock(config.Now))
	}

	posts := config.Posts
	if posts == nil {
		posts = post.NewMemoryStore(post.WithClock(config.Now))
	}

	logger := config.Logger
	if logger == nil {
		logger = observe.NewNopLogger()
	}
	metrics := config.Metrics
	if metrics == nil {
		metrics = observe.NopMetrics()
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = observe.NewNopTracer()
	}

	return &Engine{
		identities: identities,
		posts:      posts,
		hasher:     hasher,
		tokens:     tokens,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			Limit:  config.RateLimitMax,
			Window: config.RateLimitWindow,
			Now:    config.Now,
		}),
		decoyHash: decoyHash,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
	}, nil
}

// Tokens returns the engine's token service. Health probes use it to
// issue and validate a throwaway token against the live secret.
func (e *Engine) Tokens() *token.Service {
	return e.tokens
}

// begin opens the flow span and returns the finish func that closes
// it, records the flow metric, and logs the rejection if the flow
// failed.
func (e *Engine) begin(ctx context.Context, meta observe.FlowMeta) (context.Context, func(error)) {
	ctx, span := e.tracer.StartSpan(ctx, meta)
	start := time.Now()

	return ctx, func(err error) {
		kind := Kind(err)
		e.tracer.EndSpan(span, err)
		e.metrics.RecordFlow(ctx, meta, time.Since(start), kind)

		if err == nil {
			return
		}
		fields := []observe.Field{
			{Key: "flow", Value: meta.Name},
			{Key: "kind", Value: kind},
			{Key: "error", Value: err.Error()},
		}
		if meta.Subject != "" {
			fields = append(fields, observe.Field{Key: "subject", Value: meta.Subject})
		}
		e.logger.Warn(ctx, "flow rejected", fields...)
	}
}
