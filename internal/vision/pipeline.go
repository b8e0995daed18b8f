package vision

import (
	"time"

	"livegauge/internal/config"
	"livegauge/internal/measure"

	"gocv.io/x/gocv"
)

// Output is one processed frame: the annotated display image and what was measured on it.
type Output struct {
	Display gocv.Mat
	Result  measure.FrameResult
	FPS     float64
}

// Close releases the display image.
func (o *Output) Close() {
	o.Display.Close()
}

// Pipeline runs the per-frame chain: preprocess, extract, measure, frame rate, render.
type Pipeline struct {
	pre      *Preprocessor
	ext      *Extractor
	measurer *measure.Measurer
	renderer *Renderer
	fps      *measure.FrameRateTracker
}

// NewPipeline wires the per-frame chain. The calibrator carries state across frames;
// now may be nil to use the wall clock.
func NewPipeline(cfg config.Measurement, calibrator *measure.Calibrator, style Style, now func() time.Time) *Pipeline {
	return &Pipeline{
		pre:      NewPreprocessor(cfg),
		ext:      NewExtractor(cfg),
		measurer: measure.NewMeasurer(cfg, Fitter{}, calibrator),
		renderer: NewRenderer(cfg.Unit, style),
		fps:      measure.NewFrameRateTracker(cfg.FPSWindow, now),
	}
}

// Calibrator returns the calibration shared by every frame of this pipeline.
func (p *Pipeline) Calibrator() *measure.Calibrator {
	return p.measurer.Calibrator()
}

// Process measures one frame. ErrEmptyFrame, ErrUnsupportedChannels and ErrNoHierarchy mean
// the frame is dropped without touching the frame-rate window. The caller must Close a returned Output.
func (p *Pipeline) Process(frame gocv.Mat) (*Output, error) {
	prep, err := p.pre.Prepare(frame)
	if err != nil {
		return nil, err
	}
	defer prep.Gray.Close()
	defer prep.Blurred.Close()

	contours, err := p.ext.Extract(prep.Blurred)
	if err != nil {
		prep.Display.Close()
		return nil, err
	}

	res := p.measurer.Measure(contours)
	fps := p.fps.Tick()
	p.renderer.Render(&prep.Display, res, fps)

	return &Output{Display: prep.Display, Result: res, FPS: fps}, nil
}
