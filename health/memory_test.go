package health

import (
	"context"
	"testing"
)

func TestNewMemoryChecker_Defaults(t *testing.T) {
	checker := NewMemoryChecker(MemoryCheckerConfig{})

	if checker.config.WarningThreshold != 0.8 {
		t.Errorf("WarningThreshold = %v, want 0.8", checker.config.WarningThreshold)
	}
	if checker.config.CriticalThreshold != 0.95 {
		t.Errorf("CriticalThreshold = %v, want 0.95", checker.config.CriticalThreshold)
	}
}

func TestNewMemoryChecker_InvertedThresholds(t *testing.T) {
	checker := NewMemoryChecker(MemoryCheckerConfig{
		WarningThreshold:  0.9,
		CriticalThreshold: 0.5,
	})

	if checker.config.CriticalThreshold < checker.config.WarningThreshold {
		t.Errorf("CriticalThreshold %v below WarningThreshold %v",
			checker.config.CriticalThreshold, checker.config.WarningThreshold)
	}
}

func TestMemoryChecker_HealthyWithHugeCeiling(t *testing.T) {
	// A ceiling far above any test process allocation keeps the ratio
	// tiny.
	checker := NewMemoryChecker(MemoryCheckerConfig{
		MaxAlloc: 1 << 62,
	})

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Check() = %v (%s), want StatusHealthy", result.Status, result.Message)
	}
	if _, ok := result.Details["alloc_bytes"]; !ok {
		t.Error("Details missing alloc_bytes")
	}
	if _, ok := result.Details["goroutines"]; !ok {
		t.Error("Details missing goroutines")
	}
}

func TestMemoryChecker_UnhealthyWithTinyCeiling(t *testing.T) {
	// One byte of allowance forces the critical threshold.
	checker := NewMemoryChecker(MemoryCheckerConfig{
		MaxAlloc: 1,
	})

	result := checker.Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("Check() = %v, want StatusUnhealthy", result.Status)
	}
	if result.Error != ErrCheckFailed {
		t.Errorf("Error = %v, want ErrCheckFailed", result.Error)
	}
}

func TestMemoryChecker_CancelledContext(t *testing.T) {
	checker := NewMemoryChecker(MemoryCheckerConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := checker.Check(ctx)
	if result.Status != StatusUnhealthy {
		t.Errorf("Check() = %v, want StatusUnhealthy", result.Status)
	}
}

func TestMemoryChecker_Name(t *testing.T) {
	if got := NewMemoryChecker(MemoryCheckerConfig{}).Name(); got != "memory" {
		t.Errorf("Name() = %q, want memory", got)
	}
}
