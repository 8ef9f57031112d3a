package policy

import "errors"

// ErrForbidden is the sentinel matched by errors.Is for every
// *ForbiddenError. Forbidden means the caller is known but not
// allowed, as opposed to not being authenticated at all.
var ErrForbidden = errors.New("policy: access denied")
