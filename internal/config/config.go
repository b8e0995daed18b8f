// Package config holds every tunable of the measurement pipeline and the runtime around it.
package config

import (
	"math"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is used for XDG directory paths.
const AppName = "livegauge"

// Measurement defaults. They describe the bench setup: a 0.8 mm wide calibration
// target viewed at 800x600.
const (
	DefaultKnownWidth        = 0.8
	DefaultUnit              = "mm"
	DefaultWorkWidth         = 800
	DefaultWorkHeight        = 600
	DefaultBlurKernel        = 5
	DefaultCannyLow          = 50
	DefaultCannyHigh         = 100
	DefaultMinContourArea    = 500
	DefaultApproxEpsilon     = 0.01
	DefaultQuadVertices      = 5
	DefaultCircleMinVertices = 10
	DefaultMinCircleRadius   = 10
	DefaultFPSWindow         = 10
)

// Runtime defaults.
const (
	DefaultDevice     = "0"
	DefaultQueueSize  = 4
	DefaultWindowName = "Live Detection"
)

// Measurement is the fixed configuration set of the per-frame pipeline.
type Measurement struct {
	// KnownWidth is the physical width of the calibration reference.
	KnownWidth float64 `yaml:"known_width"`
	// Unit is appended to every dimension label.
	Unit string `yaml:"unit"`

	WorkWidth  int `yaml:"work_width"`
	WorkHeight int `yaml:"work_height"`

	// BlurKernel is the odd side length of the Gaussian kernel. Sigma is derived from it.
	BlurKernel int `yaml:"blur_kernel"`

	CannyLow  float64 `yaml:"canny_low"`
	CannyHigh float64 `yaml:"canny_high"`

	// MinContourArea is in square pixels; smaller contours are noise.
	MinContourArea float64 `yaml:"min_contour_area"`
	// ApproxEpsilon is multiplied by the contour perimeter.
	ApproxEpsilon float64 `yaml:"approx_epsilon"`

	// QuadVertices is the exact approximated vertex count of a reference/quad candidate.
	QuadVertices int `yaml:"quad_vertices"`
	// CircleMinVertices must be exceeded for a circular candidate.
	CircleMinVertices int `yaml:"circle_min_vertices"`
	// MinCircleRadius must be exceeded, in pixels, before a circle is measured.
	MinCircleRadius float64 `yaml:"min_circle_radius"`

	// FPSWindow is the number of frames per frame-rate update.
	FPSWindow int `yaml:"fps_window"`
}

// Capture configures the frame source.
type Capture struct {
	// Device is a camera index ("0") or a stream URL understood by OpenCV.
	Device string `yaml:"device"`
	// Width and Height request a capture resolution; zero leaves the driver default.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// QueueSize bounds the hand-off queue between acquisition and processing.
	QueueSize int `yaml:"queue_size"`
	// Files replaces the camera with a replay of still images when non-empty.
	Files []string `yaml:"files"`
}

// Display configures the presentation sink.
type Display struct {
	WindowName string `yaml:"window_name"`
	// Headless disables the window; frames are processed but not shown.
	Headless bool `yaml:"headless"`
	// SnapshotDir receives annotated frames saved with the snapshot key.
	SnapshotDir string `yaml:"snapshot_dir"`
	// MaxFrames stops the run after this many frames; zero means unlimited.
	MaxFrames int `yaml:"max_frames"`
}

// Config is the complete runtime configuration.
type Config struct {
	Measurement Measurement `yaml:"measurement"`
	Capture     Capture     `yaml:"capture"`
	Display     Display     `yaml:"display"`
	Verbose     bool        `yaml:"verbose"`
}

// DefaultMeasurement returns the default pipeline constants.
func DefaultMeasurement() Measurement {
	return Measurement{
		KnownWidth:        DefaultKnownWidth,
		Unit:              DefaultUnit,
		WorkWidth:         DefaultWorkWidth,
		WorkHeight:        DefaultWorkHeight,
		BlurKernel:        DefaultBlurKernel,
		CannyLow:          DefaultCannyLow,
		CannyHigh:         DefaultCannyHigh,
		MinContourArea:    DefaultMinContourArea,
		ApproxEpsilon:     DefaultApproxEpsilon,
		QuadVertices:      DefaultQuadVertices,
		CircleMinVertices: DefaultCircleMinVertices,
		MinCircleRadius:   DefaultMinCircleRadius,
		FPSWindow:         DefaultFPSWindow,
	}
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Measurement: DefaultMeasurement(),
		Capture: Capture{
			Device:    DefaultDevice,
			QueueSize: DefaultQueueSize,
		},
		Display: Display{
			WindowName:  DefaultWindowName,
			SnapshotDir: filepath.Join(xdg.UserDirs.Pictures, AppName),
		},
	}
}

// WithKnownWidth returns a copy with a different reference width.
func (m Measurement) WithKnownWidth(width float64) Measurement {
	m.KnownWidth = width
	return m
}

// WithCanny returns a copy with different edge thresholds.
func (m Measurement) WithCanny(low, high float64) Measurement {
	m.CannyLow = low
	m.CannyHigh = high
	return m
}

// WithWorkSize returns a copy with a different working resolution.
func (m Measurement) WithWorkSize(width, height int) Measurement {
	m.WorkWidth = width
	m.WorkHeight = height
	return m
}

// Validate reports the first invalid measurement setting.
func (m Measurement) Validate() error {
	switch {
	case m.KnownWidth <= 0 || math.IsNaN(m.KnownWidth) || math.IsInf(m.KnownWidth, 0):
		return ErrInvalidKnownWidth
	case m.WorkWidth <= 0 || m.WorkHeight <= 0:
		return ErrInvalidWorkSize
	case m.BlurKernel <= 0 || m.BlurKernel%2 == 0:
		return ErrInvalidBlurKernel
	case m.CannyLow < 0 || m.CannyHigh < m.CannyLow:
		return ErrInvalidCanny
	case m.MinContourArea < 0:
		return ErrInvalidMinArea
	case m.ApproxEpsilon <= 0:
		return ErrInvalidApproxEpsilon
	case m.QuadVertices < 3 || m.CircleMinVertices < m.QuadVertices:
		return ErrInvalidVertexCounts
	case m.MinCircleRadius < 0:
		return ErrInvalidMinRadius
	case m.FPSWindow <= 0:
		return ErrInvalidFPSWindow
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := c.Measurement.Validate(); err != nil {
		return err
	}
	if c.Capture.QueueSize <= 0 {
		return ErrInvalidQueueSize
	}
	if c.Capture.Width < 0 || c.Capture.Height < 0 {
		return ErrInvalidCaptureSize
	}
	if c.Display.MaxFrames < 0 {
		return ErrInvalidMaxFrames
	}
	return nil
}
