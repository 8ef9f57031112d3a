package health

import (
	"context"

	"github.com/jonwraymond/authops/credential"
	"github.com/jonwraymond/authops/token"
)

// probeSubject is the synthetic identity used for self-check tokens.
// It is never registered, so a leaked probe token names nobody.
const probeSubject = "health.probe"

// TokenChecker verifies the token service can complete a sign and
// validate round trip. A failing round trip usually means the signing
// key was misconfigured or rotated out from under the process.
type TokenChecker struct {
	svc *token.Service
}

// NewTokenChecker creates a token self-check against the given
// service.
func NewTokenChecker(svc *token.Service) *TokenChecker {
	return &TokenChecker{svc: svc}
}

// Name returns the checker name.
func (c *TokenChecker) Name() string {
	return "token"
}

// Check issues a probe token and validates it.
func (c *TokenChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	probe := &credential.Identity{
		Username: probeSubject,
		Role:     credential.RoleReader,
	}

	grant, err := c.svc.Issue(probe)
	if err != nil {
		return Unhealthy("token issue failed", err)
	}

	claims, err := c.svc.Validate(grant.AccessToken)
	if err != nil {
		return Unhealthy("token validate failed", err)
	}
	if claims.Subject != probeSubject {
		return Unhealthy("probe claims do not round-trip", ErrCheckFailed)
	}

	return Healthy("sign and validate round trip ok").WithDetails(map[string]any{
		"ttl": c.svc.TTL().String(),
	})
}

// Ensure TokenChecker implements Checker
var _ Checker = (*TokenChecker)(nil)
