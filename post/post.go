package post

import (
	"context"
	"time"
)

// Post is a single stored record.
type Post struct {
	// ID is the unique identifier assigned at creation.
	ID string `json:"id"`

	// Owner is the username of the author who created the post.
	// Immutable after creation.
	Owner string `json:"owner"`

	Title   string `json:"title"`
	Content string `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store keeps post records.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Returned posts are private copies; callers may not mutate store
//   state through them.
// - The store never checks authorization.
type Store interface {
	// Create stores a new post owned by owner and returns it with its
	// assigned id.
	Create(ctx context.Context, owner, title, content string) (*Post, error)

	// List returns all posts in insertion order.
	List(ctx context.Context) ([]*Post, error)

	// Get returns the post with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Post, error)

	// Update changes the given fields of an existing post. Nil fields
	// are left unchanged. Returns the updated post, or ErrNotFound.
	Update(ctx context.Context, id string, title, content *string) (*Post, error)

	// Delete removes the post with the given id, or returns
	// ErrNotFound.
	Delete(ctx context.Context, id string) error
}
