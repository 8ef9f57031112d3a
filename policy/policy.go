package policy

import (
	"fmt"

	"github.com/jonwraymond/authops/credential"
)

// Action is the operation a subject wants to perform on posts.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Subject is the authenticated principal a decision is made for.
type Subject struct {
	// Username identifies the principal.
	Username string

	// Role is the role carried by the principal's token.
	Role credential.Role
}

// CanView reports whether the subject may list and read posts.
// Any subject with a known role may view.
func CanView(s Subject) bool {
	return s.Role.Valid()
}

// CanCreate reports whether the subject may create posts.
// Only authors create.
func CanCreate(s Subject) bool {
	return s.Role == credential.RoleAuthor
}

// CanModify reports whether the subject may change the post owned by
// owner. Requires the author role and ownership; neither alone is
// enough.
func CanModify(s Subject, owner string) bool {
	return s.Role == credential.RoleAuthor && s.Username == owner
}

// CanDelete reports whether the subject may delete the post owned by
// owner. Same rule as CanModify.
func CanDelete(s Subject, owner string) bool {
	return CanModify(s, owner)
}

// ForbiddenError represents an authorization denial.
type ForbiddenError struct {
	// Username is the subject that was denied.
	Username string

	// Action is the action that was denied.
	Action Action

	// Owner is the owner of the target resource, when the denial is
	// ownership-based.
	Owner string

	// Reason explains why access was denied.
	Reason string
}

// Error returns the error message.
func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("policy: denied: subject=%q action=%q reason=%q", e.Username, e.Action, e.Reason)
}

// Is reports whether this error matches the target.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

// RequireAuthor returns a *ForbiddenError unless the subject holds
// the author role. This is the gate applied before any write reaches
// a store, so readers are denied before resource existence is even
// checked.
func RequireAuthor(s Subject, action Action) error {
	if s.Role == credential.RoleAuthor {
		return nil
	}
	return &ForbiddenError{
		Username: s.Username,
		Action:   action,
		Reason:   "author role required",
	}
}

// RequireOwner returns a *ForbiddenError unless the subject owns the
// resource. Applied after the role gate and after the resource is
// known to exist.
func RequireOwner(s Subject, action Action, owner string) error {
	if s.Username == owner {
		return nil
	}
	return &ForbiddenError{
		Username: s.Username,
		Action:   action,
		Owner:    owner,
		Reason:   "not the owner",
	}
}
