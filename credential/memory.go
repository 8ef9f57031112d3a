package credential

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory identity store keyed by username.
// Identities live for the lifetime of the process.
type MemoryStore struct {
	mu         sync.RWMutex
	identities map[string]*Identity
	hasher     Hasher
	now        func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock overrides the store's clock. Used in tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an in-memory identity store.
// A nil hasher selects a bcrypt hasher with the default cost.
func NewMemoryStore(hasher Hasher, opts ...MemoryStoreOption) *MemoryStore {
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	s := &MemoryStore{
		identities: make(map[string]*Identity),
		hasher:     hasher,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the input, hashes the password, and stores the
// new identity. The plaintext password is discarded after hashing.
func (s *MemoryStore) Register(_ context.Context, username, password string, role Role) (*Identity, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	// Hash outside the lock; bcrypt is deliberately slow.
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.identities[username]; exists {
		return nil, ErrDuplicateUsername
	}

	id := &Identity{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now(),
	}
	s.identities[username] = id

	return copyIdentity(id), nil
}

// Find returns a copy of the identity for the username.
func (s *MemoryStore) Find(_ context.Context, username string) (*Identity, error) {
	s.mu.RLock()
	id, ok := s.identities[username]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrIdentityNotFound
	}
	return copyIdentity(id), nil
}

// Len returns the number of registered identities.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.identities)
}

func copyIdentity(id *Identity) *Identity {
	dup := *id
	dup.PasswordHash = make([]byte, len(id.PasswordHash))
	copy(dup.PasswordHash, id.PasswordHash)
	return &dup
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
