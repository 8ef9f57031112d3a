package token

import "errors"

// Sentinel errors for token issuance and validation.
var (
	// ErrMissingSecret is returned by NewService when no signing
	// secret is configured.
	ErrMissingSecret = errors.New("token: signing secret is required")

	// ErrInvalid covers malformed tokens, bad signatures, and unknown
	// signing methods.
	ErrInvalid = errors.New("token: invalid token")

	// ErrExpired is returned for structurally valid tokens whose
	// lifetime has passed.
	ErrExpired = errors.New("token: token expired")
)
