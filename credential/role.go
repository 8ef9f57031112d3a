package credential

import "fmt"

// Role determines what an identity is allowed to do with posts.
type Role string

const (
	// RoleReader can view posts but cannot create or change them.
	RoleReader Role = "reader"

	// RoleAuthor can view posts and create new ones, and can modify or
	// delete the posts it owns.
	RoleAuthor Role = "author"
)

// ParseRole converts a raw string into a Role.
// Returns ErrInvalidRole for anything other than "reader" or "author".
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleReader:
		return RoleReader, nil
	case RoleAuthor:
		return RoleAuthor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleReader || r == RoleAuthor
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
