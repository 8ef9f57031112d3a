package secret

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"os"
	"strings"
)

// Source scheme names accepted by Load.
const (
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceLiteral = "literal"
	SourceRandom  = "random"
)

// RandomKeySize is the byte length of keys produced by the random
// source.
const RandomKeySize = 32

// Load resolves a signing-key source spec into key material.
//
// Spec forms: "env:NAME", "file:PATH", "literal:TEXT", and "random".
// Environment references like ${HOME} inside a file path are expanded
// strictly; a missing variable is an error, not an empty string.
// File contents have trailing newlines stripped so keys written with
// echo or a text editor round-trip cleanly.
func Load(spec string) ([]byte, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}
	if spec == SourceRandom {
		return randomKey()
	}

	scheme, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, spec)
	}

	switch scheme {
	case SourceEnv:
		return envKey(rest)
	case SourceFile:
		return fileKey(rest)
	case SourceLiteral:
		return literalKey(rest)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, scheme)
	}
}

func envKey(name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: env source needs a variable name", ErrEmptySpec)
	}
	value, ok := os.LookupEnv(name)
	if !ok {
		return nil, fmt.Errorf("secret: environment variable %s is not set", name)
	}
	if value == "" {
		return nil, fmt.Errorf("%w: env:%s", ErrEmptyKey, name)
	}
	return []byte(value), nil
}

func fileKey(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: file source needs a path", ErrEmptySpec)
	}
	expanded, err := ExpandEnvStrict(path)
	if err != nil {
		return nil, fmt.Errorf("secret: expand key path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("secret: read key file: %w", err)
	}
	data = bytes.TrimRight(data, "\r\n")
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file:%s", ErrEmptyKey, expanded)
	}
	return data, nil
}

func literalKey(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: literal source is empty", ErrEmptyKey)
	}
	return []byte(text), nil
}

func randomKey() ([]byte, error) {
	key := make([]byte, RandomKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("secret: generate random key: %w", err)
	}
	return key, nil
}
