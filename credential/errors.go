package credential

import "errors"

// Sentinel errors for identity registration and lookup.
var (
	// Input validation errors
	ErrEmptyUsername = errors.New("credential: username is required")
	ErrEmptyPassword = errors.New("credential: password is required")
	ErrInvalidRole   = errors.New("credential: invalid role")

	// Store errors
	ErrDuplicateUsername = errors.New("credential: username already registered")
	ErrIdentityNotFound  = errors.New("credential: identity not found")
)
