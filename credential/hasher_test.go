package credential

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !h.Verify("s3cret", hash) {
		t.Error("Verify() with correct password = false, want true")
	}
	if h.Verify("wrong", hash) {
		t.Error("Verify() with wrong password = true, want false")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("two hashes of the same password are equal, want distinct salts")
	}

	// Both still verify.
	if !h.Verify("same-password", first) {
		t.Error("Verify() against first hash = false, want true")
	}
	if !h.Verify("same-password", second) {
		t.Error("Verify() against second hash = false, want true")
	}
}

func TestBcryptHasher_HashHidesPlaintext(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("hunter2-plaintext")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if bytes.Contains(hash, []byte("hunter2-plaintext")) {
		t.Error("hash contains the plaintext password")
	}
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want bcrypt.DefaultCost (%d)", h.cost, bcrypt.DefaultCost)
	}

	h = NewBcryptHasher(bcrypt.MinCost)
	if h.cost != bcrypt.MinCost {
		t.Errorf("cost = %d, want bcrypt.MinCost (%d)", h.cost, bcrypt.MinCost)
	}
}
