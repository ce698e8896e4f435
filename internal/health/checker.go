package health

import (
	"context"
	"time"

	"github.com/sandeepkv93/go-service-template/internal/observability"
)

type CheckResult struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type Checker interface {
	Check(ctx context.Context) CheckResult
}

// ProbeRunner drives the readiness checks. With no checkers registered (all
// optional subsystems disabled) the service is trivially ready.
type ProbeRunner struct {
	checkers  []Checker
	timeout   time.Duration
	startedAt time.Time
}

func NewProbeRunner(timeout time.Duration, checkers ...Checker) *ProbeRunner {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &ProbeRunner{
		checkers:  checkers,
		timeout:   timeout,
		startedAt: time.Now(),
	}
}

func (r *ProbeRunner) Ready(ctx context.Context) (bool, []CheckResult) {
	if r == nil {
		return true, nil
	}
	results := make([]CheckResult, 0, len(r.checkers))
	allHealthy := true
	for _, c := range r.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
		res := c.Check(checkCtx)
		cancel()
		observability.RecordHealthCheck(ctx, res.Name, res.Healthy)
		results = append(results, res)
		if !res.Healthy {
			allHealthy = false
		}
	}
	return allHealthy, results
}
