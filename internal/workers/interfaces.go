// Package workers provides abstractions for managing and running
// background workers in the client application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/foodblog/go-food-blog/internal/service"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to spawn
// goroutines internally and return immediately. Stop blocks until the
// worker's background work has fully wound down and is safe to call on a
// worker that was never started.
type Worker interface {
	Run()
	Stop()
}

// LookupSource is the slice of the lookups service the refresh worker needs.
// Each fetch writes through to the local cache, so running it periodically
// keeps the form lookups warm for offline starts.
type LookupSource interface {
	FormLookups(ctx context.Context) (service.FormLookups, error)
}
