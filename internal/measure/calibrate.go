package measure

import (
	"math"
	"sync/atomic"
)

// Calibrator holds the pixels-per-unit ratio. The first successful TryInitialize wins
// and the value never changes afterwards.
type Calibrator struct {
	ratio atomic.Pointer[float64]
}

// NewCalibrator returns an uncalibrated Calibrator.
func NewCalibrator() *Calibrator {
	return &Calibrator{}
}

// TryInitialize sets the ratio if it is unset. It returns false when a ratio is already
// present or when value is not a positive finite number.
func (c *Calibrator) TryInitialize(value float64) bool {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return c.ratio.CompareAndSwap(nil, &value)
}

// Get returns the ratio and whether it has been set.
func (c *Calibrator) Get() (float64, bool) {
	p := c.ratio.Load()
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Calibrated reports whether a ratio has been set.
func (c *Calibrator) Calibrated() bool {
	return c.ratio.Load() != nil
}
