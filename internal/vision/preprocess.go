// Package vision binds the measurement pipeline to OpenCV: frame normalization, edge and
// contour extraction, shape fitting and overlay drawing.
package vision

import (
	"errors"
	"fmt"
	"image"

	"livegauge/internal/config"

	"gocv.io/x/gocv"
)

// Frame errors. Both drop the frame.
var (
	ErrEmptyFrame          = errors.New("empty frame")
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// Prepared holds the working-resolution images derived from one frame.
type Prepared struct {
	// Display is the 3-channel BGR image the overlay is drawn on.
	Display gocv.Mat
	// Gray is the single-channel copy.
	Gray gocv.Mat
	// Blurred is Gray after the Gaussian blur, ready for edge detection.
	Blurred gocv.Mat
}

// Close releases all three images.
func (p *Prepared) Close() {
	p.Display.Close()
	p.Gray.Close()
	p.Blurred.Close()
}

// Preprocessor normalizes frames to the working resolution.
type Preprocessor struct {
	size   image.Point
	kernel image.Point
}

// NewPreprocessor builds a preprocessor from the measurement settings.
func NewPreprocessor(cfg config.Measurement) *Preprocessor {
	return &Preprocessor{
		size:   image.Point{X: cfg.WorkWidth, Y: cfg.WorkHeight},
		kernel: image.Point{X: cfg.BlurKernel, Y: cfg.BlurKernel},
	}
}

// Prepare resizes frame to the working size, ignoring its aspect ratio, and derives the
// display, grayscale and blurred images. A single-channel frame is treated as grayscale;
// frames with other than 1, 3 or 4 channels are rejected.
// The caller owns the result and must Close it.
func (p *Preprocessor) Prepare(frame gocv.Mat) (*Prepared, error) {
	if frame.Empty() {
		return nil, ErrEmptyFrame
	}
	switch ch := frame.Channels(); ch {
	case 1, 3, 4:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, ch)
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(frame, &resized, p.size, 0, 0, gocv.InterpolationLinear)

	out := &Prepared{
		Display: gocv.NewMat(),
		Gray:    gocv.NewMat(),
		Blurred: gocv.NewMat(),
	}

	switch resized.Channels() {
	case 1:
		resized.CopyTo(&out.Gray)
		gocv.CvtColor(resized, &out.Display, gocv.ColorGrayToBGR)
	case 4:
		gocv.CvtColor(resized, &out.Display, gocv.ColorBGRAToBGR)
		gocv.CvtColor(out.Display, &out.Gray, gocv.ColorBGRToGray)
	case 3:
		resized.CopyTo(&out.Display)
		gocv.CvtColor(resized, &out.Gray, gocv.ColorBGRToGray)
	}

	// Zero sigma: OpenCV derives it from the kernel size.
	gocv.GaussianBlur(out.Gray, &out.Blurred, p.kernel, 0, 0, gocv.BorderDefault)

	return out, nil
}
