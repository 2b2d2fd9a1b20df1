// Package health provides a thread-safe health check registry for tracking
// downstream dependencies. The readiness endpoint consults the registry to
// decide whether the service can accept traffic.
package health

import (
	"context"
	"sync"

	"github.com/ybrd/todo/internal/app/fanout"
	"github.com/ybrd/todo/internal/ports"
)

// maxConcurrentChecks bounds the goroutines used per CheckAll call so a
// registry with many checkers cannot stampede slow dependencies.
const maxConcurrentChecks = 4

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components implementing [ports.HealthChecker] register at startup and are
// checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a health checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs all registered checks concurrently and returns results keyed
// by checker name; a nil value means healthy. The checker slice is copied
// under a read lock so the checks themselves run without holding it.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, checkers,
		func(ctx context.Context, c ports.HealthChecker) (string, error) {
			return c.Name(), c.HealthCheck(ctx)
		})

	results := make(map[string]error, len(checkers))
	for i, out := range outcomes {
		name := out.Value
		if name == "" {
			// Canceled before the check ran; fall back to the checker's name.
			name = checkers[i].Name()
		}
		results[name] = out.Err
	}
	return results
}
