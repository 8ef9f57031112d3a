package post_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonwraymond/authops/post"
)

func ExampleMemoryStore() {
	store := post.NewMemoryStore()
	ctx := context.Background()

	created, _ := store.Create(ctx, "alice", "Hello", "First post")

	newTitle := "Hello, world"
	updated, _ := store.Update(ctx, created.ID, &newTitle, nil)

	fmt.Println("Owner:", updated.Owner)
	fmt.Println("Title:", updated.Title)
	fmt.Println("Content:", updated.Content)

	_ = store.Delete(ctx, created.ID)
	_, err := store.Get(ctx, created.ID)
	fmt.Println("Gone:", errors.Is(err, post.ErrNotFound))
	// Output:
	// Owner: alice
	// Title: Hello, world
	// Content: First post
	// Gone: true
}
