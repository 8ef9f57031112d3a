// Package policy decides what an authenticated subject may do with
// posts.
//
// Decisions are pure functions of the subject's role and the resource
// owner. Readers and authors may view; only authors may create; and
// modifying or deleting a post requires the author role and ownership
// of that post. The package performs no authentication and touches no
// stores.
package policy
