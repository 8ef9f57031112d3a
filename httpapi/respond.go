package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/jonwraymond/authops/credential"
	"github.com/jonwraymond/authops/engine"
	"github.com/jonwraymond/authops/policy"
	"github.com/jonwraymond/authops/post"
	"github.com/jonwraymond/authops/ratelimit"
	"github.com/jonwraymond/authops/token"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps an engine error onto a status code and a
// client-safe message. Rate limited responses carry a Retry-After
// header, unauthenticated ones a WWW-Authenticate challenge.
func respondDomainError(w http.ResponseWriter, err error) {
	status := statusForKind(engine.Kind(err))

	var limited *ratelimit.LimitedError
	if errors.As(err, &limited) {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(limited)))
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	respondError(w, status, clientMessage(err))
}

// statusForKind maps the engine's error vocabulary onto HTTP status
// codes.
func statusForKind(kind string) int {
	switch kind {
	case engine.KindInvalidInput, engine.KindDuplicateUsername:
		return http.StatusBadRequest
	case engine.KindInvalidCredentials, engine.KindTokenExpired, engine.KindTokenInvalid:
		return http.StatusUnauthorized
	case engine.KindForbidden:
		return http.StatusForbidden
	case engine.KindNotFound:
		return http.StatusNotFound
	case engine.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage picks the message clients see. Domain error strings
// carry internal package prefixes, so they never go out verbatim.
func clientMessage(err error) string {
	var forbidden *policy.ForbiddenError

	switch {
	case errors.Is(err, credential.ErrInvalidRole):
		return "role must be either 'reader' or 'author'"
	case errors.Is(err, credential.ErrEmptyUsername), errors.Is(err, credential.ErrEmptyPassword):
		return "username and password are required"
	case errors.Is(err, credential.ErrDuplicateUsername):
		return "username already registered"
	case errors.Is(err, engine.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, ratelimit.ErrRateLimited):
		return "too many login attempts, try again later"
	case errors.Is(err, token.ErrExpired):
		return "token expired"
	case errors.Is(err, token.ErrInvalid):
		return "invalid authentication credentials"
	case errors.As(err, &forbidden):
		if forbidden.Owner != "" {
			return fmt.Sprintf("you can only %s your own posts", forbidden.Action)
		}
		return "only authors can perform this action"
	case errors.Is(err, policy.ErrForbidden):
		return "only authors can perform this action"
	case errors.Is(err, post.ErrNotFound):
		return "post not found"
	default:
		return "internal server error"
	}
}

// retryAfterSeconds rounds the wait up to whole seconds, at least one.
func retryAfterSeconds(limited *ratelimit.LimitedError) int {
	secs := int(math.Ceil(limited.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}
