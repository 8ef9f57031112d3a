package credential

import "time"

// Identity represents a registered principal.
type Identity struct {
	// Username is the unique identifier chosen at registration.
	Username string

	// PasswordHash is the salted hash of the password. Never the
	// plaintext.
	PasswordHash []byte

	// Role determines what this identity may do.
	Role Role

	// CreatedAt is when the identity was registered.
	CreatedAt time.Time
}

// Public returns a copy of the identity with the password hash
// stripped. Use this for anything that leaves the auth core.
func (id *Identity) Public() *Identity {
	return &Identity{
		Username:  id.Username,
		Role:      id.Role,
		CreatedAt: id.CreatedAt,
	}
}

// IsAuthor reports whether the identity holds the author role.
func (id *Identity) IsAuthor() bool {
	return id.Role == RoleAuthor
}
