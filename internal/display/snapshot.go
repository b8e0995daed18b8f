package display

import (
	"fmt"
	"path/filepath"

	gaugeimage "livegauge/internal/image"

	"gocv.io/x/gocv"
)

// Snapshotter writes annotated frames as PNG files named after the run and frame.
type Snapshotter struct {
	dir   string
	runID string
}

// NewSnapshotter saves into dir; runID prefixes every file name.
func NewSnapshotter(dir, runID string) *Snapshotter {
	return &Snapshotter{dir: dir, runID: runID}
}

// Path returns the file name used for frame seq.
func (s *Snapshotter) Path(seq int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%06d.png", s.runID, seq))
}

// Save converts frame and writes it, returning the path written.
func (s *Snapshotter) Save(frame gocv.Mat, seq int64) (string, error) {
	img, err := gaugeimage.ToImage(frame)
	if err != nil {
		return "", fmt.Errorf("snapshot frame %d: %w", seq, err)
	}
	path := s.Path(seq)
	if err := gaugeimage.Save(path, img); err != nil {
		return "", err
	}
	return path, nil
}
