package ratelimit

import "errors"

// ErrRateLimited is the sentinel matched by errors.Is for every
// *LimitedError.
var ErrRateLimited = errors.New("ratelimit: too many attempts")
