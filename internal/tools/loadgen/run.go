package loadgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	BaseURL     string
	Profile     string
	Token       string
	Duration    time.Duration
	RPS         int
	Concurrency int
}

type Result struct {
	TotalRequests int64
	Failures      int64
	Status2xx     int64
	Status4xx     int64
	Status5xx     int64
}

// Run drives traffic at the template's endpoints. The auth profile sends the
// configured bearer token; leave it empty to exercise the 401/403 paths.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 10 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 15
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}

	client := &http.Client{Timeout: 5 * time.Second}
	endpoints := endpointsForProfile(cfg.Profile)
	if len(endpoints) == 0 {
		return Result{}, fmt.Errorf("unknown profile: %s", cfg.Profile)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	var total, failures, s2xx, s4xx, s5xx int64
	jobs := make(chan string, cfg.Concurrency*2)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Concurrency; i++ {
		g.Go(func() error {
			for path := range jobs {
				req, err := http.NewRequestWithContext(gctx, http.MethodGet, cfg.BaseURL+path, nil)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					continue
				}
				req.Header.Set("X-Request-Id", uuid.NewString())
				if cfg.Token != "" {
					req.Header.Set("Authorization", "Bearer "+cfg.Token)
				}
				resp, err := client.Do(req)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					continue
				}
				_ = resp.Body.Close()
				atomic.AddInt64(&total, 1)
				switch {
				case resp.StatusCode >= 200 && resp.StatusCode < 300:
					atomic.AddInt64(&s2xx, 1)
				case resp.StatusCode >= 400 && resp.StatusCode < 500:
					atomic.AddInt64(&s4xx, 1)
				case resp.StatusCode >= 500:
					atomic.AddInt64(&s5xx, 1)
				}
			}
			return nil
		})
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.RPS))
	defer ticker.Stop()
	i := 0
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			jobs <- endpoints[i%len(endpoints)]
			i++
		}
	}
	close(jobs)
	_ = g.Wait()
	return Result{TotalRequests: total, Failures: failures, Status2xx: s2xx, Status4xx: s4xx, Status5xx: s5xx}, nil
}

func endpointsForProfile(profile string) []string {
	switch strings.ToLower(profile) {
	case "", "baseline":
		return []string{"/", "/health/live", "/items/1", "/items/2?q=demo"}
	case "auth":
		return []string{"/protected/", "/protected/data"}
	case "users":
		return []string{"/users/", "/users/1"}
	case "mixed":
		return []string{"/", "/items/1", "/protected/", "/users/1"}
	default:
		return nil
	}
}
