package engine

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func benchEngine(b *testing.B) *Engine {
	b.Helper()
	e, err := New(Config{
		TokenSecret:  []byte("bench-secret"),
		BcryptCost:   bcrypt.MinCost,
		RateLimitMax: 1 << 30,
	})
	if err != nil {
		b.Fatal(err)
	}
	return e
}

func BenchmarkLogin(b *testing.B) {
	e := benchEngine(b)
	ctx := context.Background()
	if _, err := e.Register(ctx, "alice", "wonderland", "author"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Login(ctx, "alice", "wonderland"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAuthenticate(b *testing.B) {
	e := benchEngine(b)
	ctx := context.Background()
	if _, err := e.Register(ctx, "alice", "wonderland", "author"); err != nil {
		b.Fatal(err)
	}
	grant, err := e.Login(ctx, "alice", "wonderland")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Authenticate(ctx, grant.AccessToken); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreatePost(b *testing.B) {
	e := benchEngine(b)
	ctx := context.Background()
	if _, err := e.Register(ctx, "alice", "wonderland", "author"); err != nil {
		b.Fatal(err)
	}
	grant, err := e.Login(ctx, "alice", "wonderland")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.CreatePost(ctx, grant.AccessToken, fmt.Sprintf("post %d", i), "body"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkListPosts(b *testing.B) {
	e := benchEngine(b)
	ctx := context.Background()
	if _, err := e.Register(ctx, "alice", "wonderland", "author"); err != nil {
		b.Fatal(err)
	}
	grant, err := e.Login(ctx, "alice", "wonderland")
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if _, err := e.CreatePost(ctx, grant.AccessToken, fmt.Sprintf("post %d", i), "body"); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.ListPosts(ctx, grant.AccessToken); err != nil {
			b.Fatal(err)
		}
	}
}
