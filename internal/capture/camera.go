package capture

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"gocv.io/x/gocv"
)

// Camera errors. Both are fatal to a run.
var (
	ErrCameraOpen = errors.New("failed to open camera")
	ErrReadFailed = errors.New("failed to read frame from camera")
)

// Camera acquires frames from an OpenCV video device or stream.
type Camera struct {
	device string
	cap    *gocv.VideoCapture

	closeOnce sync.Once
	closeErr  error
}

// OpenCamera opens device, which is either a numeric index or a URL/path. Width and height
// request a capture resolution when non-zero.
func OpenCamera(device string, width, height int) (*Camera, error) {
	var target interface{} = device
	if id, err := strconv.Atoi(device); err == nil {
		target = id
	}

	vc, err := gocv.OpenVideoCapture(target)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrCameraOpen, device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w %q", ErrCameraOpen, device)
	}

	if width > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(width))
	}
	if height > 0 {
		vc.Set(gocv.VideoCaptureFrameHeight, float64(height))
	}

	log.Printf("Capture: opened %s (%.0fx%.0f)", device,
		vc.Get(gocv.VideoCaptureFrameWidth), vc.Get(gocv.VideoCaptureFrameHeight))

	return &Camera{device: device, cap: vc}, nil
}

// Name identifies the device in logs.
func (c *Camera) Name() string {
	return "camera " + c.device
}

// Run reads frames as fast as the device delivers them. A full queue drops the newest
// frame rather than stalling acquisition. Empty reads are skipped; a failed read ends
// the run with ErrReadFailed.
func (c *Camera) Run(ctx context.Context, q *Queue) error {
	defer q.Close()

	var seq int64
	for {
		if ctx.Err() != nil {
			return nil
		}

		img := gocv.NewMat()
		if ok := c.cap.Read(&img); !ok {
			img.Close()
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrReadFailed, c.device)
		}
		if img.Empty() {
			img.Close()
			continue
		}

		q.Offer(Frame{Mat: img, Seq: seq, Captured: time.Now()})
		seq++
	}
}

// Close releases the device. It is idempotent.
func (c *Camera) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.cap.Close()
		log.Printf("Capture: released %s", c.device)
	})
	return c.closeErr
}
