package capture

import (
	"context"
	"fmt"
	"log"
	"time"

	gaugeimage "livegauge/internal/image"
)

// Files replays still images as a frame stream, in the order given.
type Files struct {
	paths []string
	// Interval paces the replay; zero delivers frames as fast as the queue accepts them.
	Interval time.Duration
}

// NewFiles expands paths (files or directories) into a replay source.
func NewFiles(paths []string) (*Files, error) {
	expanded, err := gaugeimage.ExpandPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(expanded) == 0 {
		return nil, fmt.Errorf("no images found in %v", paths)
	}
	return &Files{paths: expanded}, nil
}

// Name identifies the source in logs.
func (f *Files) Name() string {
	return fmt.Sprintf("replay of %d images", len(f.paths))
}

// Paths returns the files in replay order.
func (f *Files) Paths() []string {
	return f.paths
}

// Run loads each file and blocks on the queue, so no replayed frame is dropped.
// Files that fail to decode are logged and skipped.
func (f *Files) Run(ctx context.Context, q *Queue) error {
	defer q.Close()

	var ticker *time.Ticker
	if f.Interval > 0 {
		ticker = time.NewTicker(f.Interval)
		defer ticker.Stop()
	}

	for i, path := range f.paths {
		if ticker != nil && i > 0 {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return nil
			}
		}

		img, err := gaugeimage.Load(path)
		if err != nil {
			log.Printf("Capture: skipping %s: %v", path, err)
			continue
		}
		mat, err := gaugeimage.ToMat(img)
		if err != nil {
			mat.Close()
			log.Printf("Capture: skipping %s: %v", path, err)
			continue
		}

		if err := q.Put(ctx, Frame{Mat: mat, Seq: int64(i), Captured: time.Now()}); err != nil {
			return nil
		}
	}
	return nil
}

// Close is a no-op; files are closed as they are read.
func (f *Files) Close() error {
	return nil
}
