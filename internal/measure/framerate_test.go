package measure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameRateDecimation(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	f := NewFrameRateTracker(10, clock.now)

	for i := 1; i <= 9; i++ {
		clock.advance(50 * time.Millisecond)
		assert.Zero(t, f.Tick(), "frame %d", i)
	}
	clock.advance(50 * time.Millisecond)
	assert.InDelta(t, 20.0, f.Tick(), 1e-9) // 10 frames in 0.5s

	// The next window runs slower; the estimate stays stale until it completes.
	for i := 1; i <= 9; i++ {
		clock.advance(100 * time.Millisecond)
		assert.InDelta(t, 20.0, f.Tick(), 1e-9, "frame %d", i)
	}
	clock.advance(100 * time.Millisecond)
	assert.InDelta(t, 10.0, f.Tick(), 1e-9)
	assert.InDelta(t, 10.0, f.Estimate(), 1e-9)
}

func TestFrameRateZeroElapsedKeepsEstimate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	f := NewFrameRateTracker(2, clock.now)
	f.Tick()
	assert.Zero(t, f.Tick())
}

func TestFrameRateDefaults(t *testing.T) {
	f := NewFrameRateTracker(0, nil)
	assert.NotPanics(t, func() { f.Tick() })
}
