// Package app runs the live measurement loop: acquisition on one goroutine, processing
// and display on another, with teardown on every exit path.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"livegauge/internal/capture"
	"livegauge/internal/config"
	"livegauge/internal/display"
	"livegauge/internal/measure"
	"livegauge/internal/vision"

	"golang.org/x/sync/errgroup"
)

// Stats summarizes a finished run.
type Stats struct {
	Processed int64
	// Skipped counts frames dropped by the pipeline (empty, unreadable or without contours).
	Skipped int64
	// Dropped counts frames discarded because the hand-off queue was full.
	Dropped       int64
	Calibrated    bool
	PixelsPerUnit float64
	Elapsed       time.Duration
}

// Runner owns one measurement session. Calibration lives exactly as long as the Runner.
type Runner struct {
	cfg      config.Config
	source   capture.Source
	sink     display.Sink
	pipeline *vision.Pipeline
	runID    string

	// OnResult, when set, is called with every processed frame before it is shown.
	OnResult func(seq int64, out *vision.Output)

	stats Stats
}

// New wires a runner. It does not take ownership of source or sink; the caller closes them.
func New(cfg config.Config, source capture.Source, sink display.Sink, runID string) *Runner {
	return &Runner{
		cfg:      cfg,
		source:   source,
		sink:     sink,
		pipeline: vision.NewPipeline(cfg.Measurement, measure.NewCalibrator(), vision.DefaultStyle(), nil),
		runID:    runID,
	}
}

// Pipeline exposes the per-frame pipeline, mainly for its calibration state.
func (r *Runner) Pipeline() *vision.Pipeline {
	return r.pipeline
}

// Stats returns the counters of the last Run.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Run processes frames until the operator quits, ctx is cancelled, the frame limit is
// reached or the source runs dry. Source failures are returned; everything the loop
// treats as recoverable is not.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	q := capture.NewQueue(r.cfg.Capture.QueueSize)
	log.Printf("Run %s: reading from %s", r.runID, r.source.Name())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.source.Run(gctx, q)
	})
	g.Go(func() error {
		// Processing ending for any reason stops acquisition.
		defer cancel()
		return r.process(gctx, q)
	})

	err := g.Wait()
	q.Drain()

	r.stats.Dropped = q.Dropped()
	r.stats.PixelsPerUnit, r.stats.Calibrated = r.pipeline.Calibrator().Get()
	r.stats.Elapsed = time.Since(start)
	r.logSummary()

	return err
}

func (r *Runner) process(ctx context.Context, q *capture.Queue) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		frame, err := q.Get(ctx)
		if err != nil {
			if errors.Is(err, capture.ErrQueueClosed) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		done, err := r.handle(frame)
		frame.Close()
		if err != nil || done {
			return err
		}
	}
}

// handle runs one frame to completion. It returns true when the run should stop.
func (r *Runner) handle(frame capture.Frame) (bool, error) {
	out, err := r.pipeline.Process(frame.Mat)
	if err != nil {
		if dropped(err) {
			r.stats.Skipped++
			r.debugf("Frame %d: dropped: %v", frame.Seq, err)
			if err := r.sink.Poll(); err != nil {
				return false, fmt.Errorf("display: %w", err)
			}
			return r.sink.QuitRequested(), nil
		}
		return false, fmt.Errorf("process frame %d: %w", frame.Seq, err)
	}
	defer out.Close()

	r.stats.Processed++
	res := out.Result
	if res.CalibratedNow {
		log.Printf("Calibration: %.4f px/%s from frame %d", res.PixelsPerUnit, r.cfg.Measurement.Unit, frame.Seq)
	}
	r.debugf("Frame %d: %d contours admitted, %d quads, %d circles, %d holes, %.1f fps",
		frame.Seq, res.Admitted, len(res.Quads), len(res.Circles), len(res.Holes), out.FPS)

	if r.OnResult != nil {
		r.OnResult(frame.Seq, out)
	}

	if err := r.sink.Show(out.Display, frame.Seq); err != nil {
		return false, fmt.Errorf("display: %w", err)
	}
	if r.sink.QuitRequested() {
		log.Printf("Run %s: quit requested", r.runID)
		return true, nil
	}
	if limit := r.cfg.Display.MaxFrames; limit > 0 && r.stats.Processed >= int64(limit) {
		log.Printf("Run %s: reached frame limit %d", r.runID, limit)
		return true, nil
	}
	return false, nil
}

// dropped reports whether err only invalidates the current frame.
func dropped(err error) bool {
	return errors.Is(err, vision.ErrNoHierarchy) ||
		errors.Is(err, vision.ErrEmptyFrame) ||
		errors.Is(err, vision.ErrUnsupportedChannels)
}

func (r *Runner) debugf(format string, args ...any) {
	if r.cfg.Verbose {
		log.Printf(format, args...)
	}
}

func (r *Runner) logSummary() {
	s := r.stats
	cal := "not calibrated"
	if s.Calibrated {
		cal = fmt.Sprintf("%.4f px/%s", s.PixelsPerUnit, r.cfg.Measurement.Unit)
	}
	log.Printf("Run %s: %d processed, %d skipped, %d dropped in %s; %s",
		r.runID, s.Processed, s.Skipped, s.Dropped, s.Elapsed.Round(time.Millisecond), cal)
}
