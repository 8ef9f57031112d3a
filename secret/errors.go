package secret

import "errors"

// Key loading errors.
var (
	// ErrEmptySpec is returned when the source spec is blank.
	ErrEmptySpec = errors.New("secret: key source spec is required")

	// ErrUnknownSource is returned for specs with an unrecognized
	// scheme.
	ErrUnknownSource = errors.New("secret: unknown key source")

	// ErrEmptyKey is returned when a source resolves but yields no key
	// material.
	ErrEmptyKey = errors.New("secret: key source resolved to an empty key")
)
