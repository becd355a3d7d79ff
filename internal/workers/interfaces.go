// Package workers runs the background jobs of the server next to the
// transports and stops them together with the process context.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
