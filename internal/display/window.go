package display

import (
	"log"
	"sync"

	"gocv.io/x/gocv"
)

// Window shows frames in an OpenCV highgui window. q or ESC requests quit; s saves
// the current frame when a Snapshotter is attached.
type Window struct {
	win  *gocv.Window
	snap *Snapshotter

	last  gocv.Mat
	seq   int64
	quit  bool
	close sync.Once
}

// NewWindow opens a named window. snap may be nil.
func NewWindow(name string, snap *Snapshotter) *Window {
	return &Window{
		win:  gocv.NewWindow(name),
		snap: snap,
		last: gocv.NewMat(),
		seq:  -1,
	}
}

// Show displays frame and waits one millisecond for a key.
func (w *Window) Show(frame gocv.Mat, seq int64) error {
	w.win.IMShow(frame)
	frame.CopyTo(&w.last)
	w.seq = seq
	return w.handleKey(w.win.WaitKey(1))
}

// Poll keeps the window responsive when no frame was produced.
func (w *Window) Poll() error {
	return w.handleKey(w.win.WaitKey(1))
}

func (w *Window) handleKey(key int) error {
	if key < 0 {
		return nil
	}
	switch key & 0xFF {
	case KeyQuit, KeyEsc:
		w.quit = true
	case KeySnapshot:
		if w.snap == nil || w.last.Empty() {
			return nil
		}
		path, err := w.snap.Save(w.last, w.seq)
		if err != nil {
			// A failed snapshot must not end the live session.
			log.Printf("Display: snapshot failed: %v", err)
			return nil
		}
		log.Printf("Display: saved snapshot %s", path)
	}
	return nil
}

// QuitRequested reports whether q or ESC was pressed.
func (w *Window) QuitRequested() bool {
	return w.quit
}

// Close destroys the window. It is idempotent.
func (w *Window) Close() error {
	var err error
	w.close.Do(func() {
		w.last.Close()
		err = w.win.Close()
	})
	return err
}
