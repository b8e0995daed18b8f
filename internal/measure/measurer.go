package measure

import (
	"livegauge/internal/config"
	"livegauge/pkg/geometry"
)

// FrameResult is everything measured in one frame, ready for rendering.
type FrameResult struct {
	Quads   []QuadMeasurement
	Circles []CircleMeasurement
	Holes   []Hole

	// Admitted counts contours that passed the area floor.
	Admitted int
	// Unclassified counts admitted contours that were neither quads nor circles.
	Unclassified int

	// CalibratedNow is set on the one frame that established the ratio.
	CalibratedNow bool
	Calibrated    bool
	PixelsPerUnit float64
}

// Measurer runs classification, calibration, dimensioning and hole annotation
// over the contours of a frame.
type Measurer struct {
	cfg        config.Measurement
	classifier Classifier
	fitter     Fitter
	calibrator *Calibrator
}

// NewMeasurer wires a measurer. The calibrator is shared across frames and owned by the caller.
func NewMeasurer(cfg config.Measurement, fitter Fitter, calibrator *Calibrator) *Measurer {
	return &Measurer{
		cfg:        cfg,
		classifier: NewClassifier(cfg),
		fitter:     fitter,
		calibrator: calibrator,
	}
}

// Calibrator returns the shared calibration state.
func (m *Measurer) Calibrator() *Calibrator {
	return m.calibrator
}

// Measure processes contours in two passes. The shape pass walks contours in extractor
// order, because the first reference shape in that order sets the calibration.
// The hole pass has no ordering requirement.
func (m *Measurer) Measure(contours []Contour) FrameResult {
	var res FrameResult
	m.measureShapes(contours, &res)
	res.Holes = m.annotateHoles(contours)
	res.PixelsPerUnit, res.Calibrated = m.calibrator.Get()
	return res
}

func (m *Measurer) measureShapes(contours []Contour, res *FrameResult) {
	for _, ct := range contours {
		if !m.classifier.Admit(ct) {
			continue
		}
		res.Admitted++

		switch m.classifier.Classify(ct.Vertices) {
		case ShapeQuad:
			box := geometry.OrderQuad(m.fitter.MinAreaRect(ct.Points))
			if m.calibrator.TryInitialize(box.Width() / m.cfg.KnownWidth) {
				res.CalibratedNow = true
			}
			ppu, _ := m.calibrator.Get()
			res.Quads = append(res.Quads, MeasureQuad(box, ppu))

		case ShapeCircle:
			circle := m.fitter.MinEnclosingCircle(ct.Points)
			ppu, _ := m.calibrator.Get()
			if cm, ok := MeasureCircle(circle, m.cfg.MinCircleRadius, ppu); ok {
				res.Circles = append(res.Circles, cm)
			}

		default:
			res.Unclassified++
		}
	}
}

func (m *Measurer) annotateHoles(contours []Contour) []Hole {
	var holes []Hole
	for _, ct := range contours {
		if !m.classifier.Admit(ct) || !ct.IsHole() {
			continue
		}
		holes = append(holes, AnnotateHole(ct, m.fitter))
	}
	return holes
}
