package capture

import "context"

// Source produces frames into a queue until ctx is cancelled or it runs out.
// Run closes the queue when it returns. Close releases the underlying device and is
// safe to call on every exit path.
type Source interface {
	Run(ctx context.Context, q *Queue) error
	Close() error
	Name() string
}
