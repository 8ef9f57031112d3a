package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/authops/credential"
	"github.com/jonwraymond/authops/observe"
	"github.com/jonwraymond/authops/policy"
	"github.com/jonwraymond/authops/token"
)

// Register creates a new identity and returns its public form, with
// the password hash stripped. The role string must parse as "reader"
// or "author".
//
// Fails with credential.ErrDuplicateUsername for taken usernames,
// credential.ErrInvalidRole for unknown roles, and
// credential.ErrEmptyUsername / credential.ErrEmptyPassword for
// missing fields.
func (e *Engine) Register(ctx context.Context, username, password, role string) (_ *credential.Identity, err error) {
	ctx, finish := e.begin(ctx, observe.FlowMeta{Name: "register", Subject: username})
	defer func() { finish(err) }()

	r, err := credential.ParseRole(role)
	if err != nil {
		return nil, err
	}

	id, err := e.identities.Register(ctx, username, password, r)
	if err != nil {
		return nil, err
	}

	e.logger.Info(ctx, "identity registered",
		observe.Field{Key: "subject", Value: id.Username},
		observe.Field{Key: "role", Value: id.Role.String()},
	)
	return id.Public(), nil
}

// Login authenticates the username/password pair and issues a bearer
// token grant.
//
// The rate limiter gates the attempt before any credential is read
// and counts every allowed attempt, successful or not; at the cap it
// returns a *ratelimit.LimitedError without recording. Unknown
// usernames and wrong passwords both come back as
// ErrInvalidCredentials, and the unknown-user path still pays one
// bcrypt verification against the decoy hash so the two failures are
// not separable by timing.
func (e *Engine) Login(ctx context.Context, username, password string) (_ *token.Grant, err error) {
	ctx, finish := e.begin(ctx, observe.FlowMeta{Name: "login", Subject: username})
	defer func() { finish(err) }()

	if err = e.limiter.Allow(username); err != nil {
		return nil, err
	}

	id, err := e.identities.Find(ctx, username)
	switch {
	case errors.Is(err, credential.ErrIdentityNotFound):
		_ = e.hasher.Verify(password, e.decoyHash)
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("engine: look up identity: %w", err)
	}

	if !e.hasher.Verify(password, id.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	grant, err := e.tokens.Issue(id)
	if err != nil {
		return nil, err
	}

	e.logger.Info(ctx, "login succeeded",
		observe.Field{Key: "subject", Value: username},
		observe.Field{Key: "expires_at", Value: grant.ExpiresAt},
	)
	return grant, nil
}

// Authenticate validates a bearer token string and returns its
// claims. Expired tokens fail with token.ErrExpired, everything else
// with token.ErrInvalid.
func (e *Engine) Authenticate(ctx context.Context, tokenString string) (_ *token.Claims, err error) {
	_, finish := e.begin(ctx, observe.FlowMeta{Name: "authenticate"})
	defer func() { finish(err) }()

	claims, err := e.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// WhoAmI validates the token and returns the public identity of its
// subject. A token whose subject is no longer registered fails with
// token.ErrInvalid: the grant has outlived the identity.
func (e *Engine) WhoAmI(ctx context.Context, tokenString string) (_ *credential.Identity, err error) {
	ctx, finish := e.begin(ctx, observe.FlowMeta{Name: "whoami"})
	defer func() { finish(err) }()

	claims, err := e.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	id, err := e.identities.Find(ctx, claims.Subject)
	switch {
	case errors.Is(err, credential.ErrIdentityNotFound):
		return nil, token.ErrInvalid
	case err != nil:
		return nil, fmt.Errorf("engine: look up identity: %w", err)
	}

	return id.Public(), nil
}

// subjectFor validates the token and returns the policy subject its
// claims carry. Post flows start here.
func (e *Engine) subjectFor(tokenString string) (policy.Subject, error) {
	claims, err := e.tokens.Validate(tokenString)
	if err != nil {
		return policy.Subject{}, err
	}
	return policy.Subject{Username: claims.Subject, Role: claims.Role}, nil
}
