package measure

import "time"

// FrameRateTracker keeps a decimated frame-rate estimate. The estimate changes once
// per window of frames and is stale in between.
type FrameRateTracker struct {
	window   int
	count    int
	start    time.Time
	estimate float64
	now      func() time.Time
}

// NewFrameRateTracker starts a tracker. A nil clock uses time.Now.
func NewFrameRateTracker(window int, now func() time.Time) *FrameRateTracker {
	if now == nil {
		now = time.Now
	}
	if window <= 0 {
		window = 1
	}
	return &FrameRateTracker{
		window: window,
		start:  now(),
		now:    now,
	}
}

// Tick records one frame and returns the current estimate.
func (f *FrameRateTracker) Tick() float64 {
	f.count++
	if f.count < f.window {
		return f.estimate
	}

	t := f.now()
	if elapsed := t.Sub(f.start).Seconds(); elapsed > 0 {
		f.estimate = float64(f.window) / elapsed
	}
	f.start = t
	f.count = 0
	return f.estimate
}

// Estimate returns the latest estimate in frames per second.
func (f *FrameRateTracker) Estimate() float64 {
	return f.estimate
}
