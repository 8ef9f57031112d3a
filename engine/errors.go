package engine

import (
	"errors"

	"github.com/jonwraymond/authops/credential"
	"github.com/jonwraymond/authops/policy"
	"github.com/jonwraymond/authops/post"
	"github.com/jonwraymond/authops/ratelimit"
	"github.com/jonwraymond/authops/token"
)

// ErrInvalidCredentials is returned by Login for both unknown
// usernames and wrong passwords. The two cases are deliberately
// indistinguishable to callers.
var ErrInvalidCredentials = errors.New("engine: invalid username or password")

// Error kinds label flow failures on metrics and give transports a
// stable vocabulary to map onto status codes.
const (
	KindInvalidInput       = "invalid_input"
	KindDuplicateUsername  = "duplicate_username"
	KindInvalidCredentials = "invalid_credentials"
	KindRateLimited        = "rate_limited"
	KindTokenExpired       = "token_expired"
	KindTokenInvalid       = "token_invalid"
	KindForbidden          = "forbidden"
	KindNotFound           = "not_found"
	KindInternal           = "internal"
)

// Kind classifies an error returned by any engine flow. Returns ""
// for nil and KindInternal for anything it does not recognize.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ratelimit.ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, credential.ErrDuplicateUsername):
		return KindDuplicateUsername
	case errors.Is(err, credential.ErrEmptyUsername),
		errors.Is(err, credential.ErrEmptyPassword),
		errors.Is(err, credential.ErrInvalidRole):
		return KindInvalidInput
	case errors.Is(err, token.ErrExpired):
		return KindTokenExpired
	case errors.Is(err, token.ErrInvalid):
		return KindTokenInvalid
	case errors.Is(err, policy.ErrForbidden):
		return KindForbidden
	case errors.Is(err, post.ErrNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}
