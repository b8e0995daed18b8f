package measure

import (
	"image"

	"livegauge/pkg/geometry"
)

// Hole is a nested contour to be outlined, with an optional centroid label position.
type Hole struct {
	Points []image.Point
	// Centroid is the area centroid, valid only when HasCentroid is true.
	Centroid    geometry.Point2D
	HasCentroid bool
}

// AnnotateHole builds the hole record for a nested contour. A zero-area contour keeps its
// outline but gets no centroid.
func AnnotateHole(ct Contour, f Fitter) Hole {
	h := Hole{Points: ct.Points}
	h.Centroid, h.HasCentroid = f.Centroid(ct.Points)
	return h
}
