// Package config loads the daemon's configuration from the
// environment, with an optional .env file for development. Library
// packages keep their own programmatic Config structs; this package
// exists only for cmd/authopsd.
package config
