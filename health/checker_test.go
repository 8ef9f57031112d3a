package health

import (
	"context"
	"errors"
	"testing"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultConstructors(t *testing.T) {
	h := Healthy("ok")
	if h.Status != StatusHealthy || h.Message != "ok" {
		t.Errorf("Healthy() = %+v", h)
	}
	if h.Timestamp.IsZero() {
		t.Error("Healthy() Timestamp should not be zero")
	}

	d := Degraded("slow")
	if d.Status != StatusDegraded || d.Message != "slow" {
		t.Errorf("Degraded() = %+v", d)
	}

	boom := errors.New("boom")
	u := Unhealthy("down", boom)
	if u.Status != StatusUnhealthy || u.Message != "down" {
		t.Errorf("Unhealthy() = %+v", u)
	}
	if u.Error != boom {
		t.Errorf("Unhealthy() Error = %v, want %v", u.Error, boom)
	}
}

func TestResult_WithDetails(t *testing.T) {
	result := Healthy("ok").WithDetails(map[string]any{"count": 3})

	if result.Details["count"] != 3 {
		t.Errorf("Details[count] = %v, want 3", result.Details["count"])
	}
}

func TestCheckerFunc(t *testing.T) {
	checker := NewCheckerFunc("identity-store", func(ctx context.Context) Result {
		return Healthy("reachable")
	})

	if checker.Name() != "identity-store" {
		t.Errorf("Name() = %v, want 'identity-store'", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Check() Status = %v, want StatusHealthy", result.Status)
	}
	if result.Message != "reachable" {
		t.Errorf("Check() Message = %v, want 'reachable'", result.Message)
	}
}

func TestCheckerFunc_HonorsContext(t *testing.T) {
	checker := NewCheckerFunc("ctx-checker", func(ctx context.Context) Result {
		select {
		case <-ctx.Done():
			return Unhealthy("cancelled", ctx.Err())
		default:
			return Healthy("ok")
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := checker.Check(ctx)
	if result.Status != StatusUnhealthy {
		t.Errorf("Check() Status = %v, want StatusUnhealthy", result.Status)
	}
}
