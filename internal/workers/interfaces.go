// Package workers runs the client's background workers.
//
// It defines the Worker interface and a Workers aggregate that starts
// multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background worker. Run is
// expected to return quickly, spawning goroutines internally for long-lived
// work and stopping them when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
