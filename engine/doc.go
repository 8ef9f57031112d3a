// Package engine composes the credential, token, ratelimit, policy,
// and post packages into the service's flows: registration, login,
// token validation, and the posts CRUD behind role and ownership
// checks.
//
// The engine owns no transport concerns. Callers hand it raw inputs
// (usernames, passwords, bearer token strings) and get back domain
// results or classified errors; mapping errors onto status codes is
// the caller's job, with Kind providing the classification. Every
// flow opens a span, records a metric, and logs its rejection at the
// boundary. Credentials never reach logs, spans, or metrics.
package engine
