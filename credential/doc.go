// Package credential manages registered identities and their password
// credentials.
//
// It provides a password hasher backed by bcrypt (salted per call,
// constant-time verification) and an in-memory identity store keyed by
// username. Plaintext passwords are never stored; the store keeps only
// the salted hash produced at registration.
package credential
