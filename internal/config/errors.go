package config

import "errors"

// Validation errors returned by Validate. Compare with errors.Is.
var (
	ErrInvalidKnownWidth    = errors.New("invalid known width: must be a positive finite number")
	ErrInvalidWorkSize      = errors.New("invalid working size: width and height must be positive")
	ErrInvalidBlurKernel    = errors.New("invalid blur kernel: must be a positive odd number")
	ErrInvalidCanny         = errors.New("invalid canny thresholds: need 0 <= low <= high")
	ErrInvalidMinArea       = errors.New("invalid minimum contour area: must be non-negative")
	ErrInvalidApproxEpsilon = errors.New("invalid approximation epsilon: must be positive")
	ErrInvalidVertexCounts  = errors.New("invalid vertex counts: need 3 <= quad vertices <= circle minimum")
	ErrInvalidMinRadius     = errors.New("invalid minimum circle radius: must be non-negative")
	ErrInvalidFPSWindow     = errors.New("invalid fps window: must be positive")
	ErrInvalidQueueSize     = errors.New("invalid queue size: must be positive")
	ErrInvalidCaptureSize   = errors.New("invalid capture size: must be non-negative")
	ErrInvalidMaxFrames     = errors.New("invalid max frames: must be non-negative")
)
