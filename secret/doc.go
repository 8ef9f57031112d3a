// Package secret resolves the token signing key from a source spec
// string.
//
// The daemon takes its key as a spec string so deployments can choose
// where the material lives without code changes:
//
//	env:NAME      value of the environment variable NAME
//	file:PATH     contents of the file at PATH
//	literal:TEXT  TEXT itself, for development and tests
//	random        fresh bytes from crypto/rand
//
// A random key never leaves the process, so every token signed with it
// stops validating on restart. That is the right trade for local
// development and the wrong one for anything shared.
package secret
