package httpapi

import "errors"

// Sentinel errors for router construction.
var (
	// ErrNilEngine is returned by NewRouter when no engine is given.
	ErrNilEngine = errors.New("httpapi: engine is required")
)
