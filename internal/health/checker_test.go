package health

import (
	"context"
	"testing"
	"time"
)

type mockChecker struct {
	result CheckResult
}

func (m mockChecker) Check(context.Context) CheckResult {
	return m.result
}

func TestProbeRunnerReady(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond,
		mockChecker{result: CheckResult{Name: "db", Healthy: true}},
	)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected ready")
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestProbeRunnerUnready(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond,
		mockChecker{result: CheckResult{Name: "db", Healthy: true}},
		mockChecker{result: CheckResult{Name: "other", Healthy: false, Error: "down"}},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected unready")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestProbeRunnerNoCheckersIsReady(t *testing.T) {
	runner := NewProbeRunner(200 * time.Millisecond)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected trivially ready with no checkers")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
