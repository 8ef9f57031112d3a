package post

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory post store. Records live for the
// lifetime of the process. List order is insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	posts map[string]*Post
	order []string
	now   func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock overrides the store's clock. Used in tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an in-memory post store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		posts: make(map[string]*Post),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new post under a fresh uuid.
func (s *MemoryStore) Create(_ context.Context, owner, title, content string) (*Post, error) {
	now := s.now()
	p := &Post{
		ID:        uuid.NewString(),
		Owner:     owner,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.posts[p.ID] = p
	s.order = append(s.order, p.ID)
	s.mu.Unlock()

	return copyPost(p), nil
}

// List returns all posts in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyPost(s.posts[id]))
	}
	return out, nil
}

// Get returns the post with the given id.
func (s *MemoryStore) Get(_ context.Context, id string) (*Post, error) {
	s.mu.RLock()
	p, ok := s.posts[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return copyPost(p), nil
}

// Update applies the non-nil fields to an existing post and bumps
// UpdatedAt.
func (s *MemoryStore) Update(_ context.Context, id string, title, content *string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}

	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = *content
	}
	p.UpdatedAt = s.now()

	return copyPost(p), nil
}

// Delete removes the post with the given id.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored posts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func copyPost(p *Post) *Post {
	dup := *p
	return &dup
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
