// Package ratelimit caps login attempts per identity over a sliding
// window.
//
// The limiter keeps a timestamp per attempt and prunes expired ones
// lazily on the next check, so an idle key costs nothing. Attempts are
// counted whether or not the login succeeds. State lives in process
// memory only: in a multi-instance deployment each instance enforces
// its own window, so the effective cap is per instance, not global.
package ratelimit
