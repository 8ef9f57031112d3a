// Package token issues and validates the short-lived signed bearer
// tokens that authenticate requests after login.
//
// Tokens are HMAC-SHA256 JWTs signed with a single process-wide
// secret. The service is stateless: possession of a token with a
// valid signature and unexpired lifetime is the entire proof, and
// there is no server-side record or revocation list. A compromised
// token therefore stays usable until it expires.
package token
