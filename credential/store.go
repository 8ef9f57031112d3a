package credential

import "context"

// Store registers and looks up identities.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Register stores only a salted hash of the password, never the
//   plaintext.
// - Usernames are unique for the lifetime of the store.
// - Returned identities are private copies; callers may not mutate
//   store state through them.
type Store interface {
	// Register creates a new identity. Returns ErrDuplicateUsername if
	// the username is taken, ErrEmptyUsername/ErrEmptyPassword for
	// missing fields, and ErrInvalidRole for unknown roles.
	Register(ctx context.Context, username, password string, role Role) (*Identity, error)

	// Find returns the identity for the username, or ErrIdentityNotFound.
	Find(ctx context.Context, username string) (*Identity, error)
}
