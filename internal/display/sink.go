// Package display presents annotated frames and reports the operator's quit request.
package display

import "gocv.io/x/gocv"

// Keys understood by the live window.
const (
	KeyEsc      = 27
	KeyQuit     = 'q'
	KeySnapshot = 's'
)

// Sink receives one annotated frame per processed iteration.
type Sink interface {
	// Show presents frame and handles pending key presses.
	Show(frame gocv.Mat, seq int64) error
	// Poll handles pending key presses on iterations that produced no frame.
	Poll() error
	// QuitRequested reports whether the operator asked to stop.
	QuitRequested() bool
	Close() error
}

// Headless discards frames. It never requests quit on its own.
type Headless struct {
	shown int64
	last  int64
	quit  bool
}

// NewHeadless returns a sink without a window.
func NewHeadless() *Headless {
	return &Headless{last: -1}
}

// Show counts the frame.
func (h *Headless) Show(_ gocv.Mat, seq int64) error {
	h.shown++
	h.last = seq
	return nil
}

// Poll does nothing.
func (h *Headless) Poll() error { return nil }

// RequestQuit makes the next QuitRequested return true.
func (h *Headless) RequestQuit() { h.quit = true }

// QuitRequested reports whether RequestQuit was called.
func (h *Headless) QuitRequested() bool { return h.quit }

// Shown returns how many frames were presented.
func (h *Headless) Shown() int64 { return h.shown }

// LastSeq returns the sequence number of the last frame, or -1.
func (h *Headless) LastSeq() int64 { return h.last }

// Close does nothing.
func (h *Headless) Close() error { return nil }
