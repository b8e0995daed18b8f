package measure

import (
	"livegauge/pkg/geometry"
)

// QuadMeasurement is a reference/quad candidate with its pixel and physical dimensions.
type QuadMeasurement struct {
	Box geometry.Quad

	TopMid    geometry.Point2D
	BottomMid geometry.Point2D
	LeftMid   geometry.Point2D
	RightMid  geometry.Point2D

	HeightPx float64
	WidthPx  float64

	// Height and Width are in physical units. They are only meaningful when Calibrated is set.
	Height     float64
	Width      float64
	Calibrated bool
}

// CircleMeasurement is a measured circular candidate.
type CircleMeasurement struct {
	Circle   geometry.Circle
	Diameter float64
}

// MeasureQuad computes the edge midpoints and the two cross distances of box.
// Physical dimensions are filled in when pixelsPerUnit is positive.
func MeasureQuad(box geometry.Quad, pixelsPerUnit float64) QuadMeasurement {
	m := QuadMeasurement{
		Box:       box,
		TopMid:    box.TopMid(),
		BottomMid: box.BottomMid(),
		LeftMid:   box.LeftMid(),
		RightMid:  box.RightMid(),
	}
	m.HeightPx = m.TopMid.Distance(m.BottomMid)
	m.WidthPx = m.LeftMid.Distance(m.RightMid)

	if pixelsPerUnit > 0 {
		m.Height = ToUnits(m.HeightPx, pixelsPerUnit)
		m.Width = ToUnits(m.WidthPx, pixelsPerUnit)
		m.Calibrated = true
	}
	return m
}

// MeasureCircle converts a fitted circle. It returns false when the radius does not exceed
// minRadius or when no calibration exists yet.
func MeasureCircle(c geometry.Circle, minRadius, pixelsPerUnit float64) (CircleMeasurement, bool) {
	if c.Radius <= minRadius || pixelsPerUnit <= 0 {
		return CircleMeasurement{}, false
	}
	return CircleMeasurement{
		Circle:   c,
		Diameter: ToUnits(c.Diameter(), pixelsPerUnit),
	}, true
}

// ToUnits converts a pixel length to physical units.
func ToUnits(px, pixelsPerUnit float64) float64 {
	return px / pixelsPerUnit
}
