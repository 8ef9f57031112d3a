package ratelimit

import (
	"fmt"
	"testing"
	"time"
)

func BenchmarkLimiter_Allow(b *testing.B) {
	l := NewLimiter(Config{Limit: 1 << 30, Window: time.Minute})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.Allow("bench"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLimiter_AllowManyKeys(b *testing.B) {
	l := NewLimiter(Config{Limit: 5, Window: time.Minute})
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("user-%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Allow(keys[i%len(keys)])
	}
}

func BenchmarkLimiter_AllowAtCap(b *testing.B) {
	l := NewLimiter(Config{Limit: 5, Window: time.Hour})
	for i := 0; i < 5; i++ {
		if err := l.Allow("capped"); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Allow("capped")
	}
}
