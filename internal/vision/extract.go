package vision

import (
	"errors"

	"livegauge/internal/config"
	"livegauge/internal/measure"

	"gocv.io/x/gocv"
)

// ErrNoHierarchy is returned when contour retrieval yields no hierarchy. The frame is dropped.
var ErrNoHierarchy = errors.New("contour extraction returned no hierarchy")

// hierarchyParent is the index of the parent link in an OpenCV hierarchy record
// (next, previous, first child, parent).
const hierarchyParent = 3

// Extractor finds edges and closed contours with a two-level hierarchy.
type Extractor struct {
	cannyLow  float32
	cannyHigh float32
	minArea   float64
	epsilon   float64
}

// NewExtractor builds an extractor from the measurement settings.
func NewExtractor(cfg config.Measurement) *Extractor {
	return &Extractor{
		cannyLow:  float32(cfg.CannyLow),
		cannyHigh: float32(cfg.CannyHigh),
		minArea:   cfg.MinContourArea,
		epsilon:   cfg.ApproxEpsilon,
	}
}

// Edges runs the fixed-threshold Canny detector. The caller must Close the result.
func (e *Extractor) Edges(blurred gocv.Mat) gocv.Mat {
	edges := gocv.NewMat()
	gocv.Canny(blurred, &edges, e.cannyLow, e.cannyHigh)
	return edges
}

// Extract detects edges in the blurred grayscale image and returns its contours.
func (e *Extractor) Extract(blurred gocv.Mat) ([]measure.Contour, error) {
	if blurred.Empty() {
		return nil, ErrEmptyFrame
	}
	edges := e.Edges(blurred)
	defer edges.Close()
	return e.Contours(edges)
}

// Contours retrieves outer contours and their immediate holes from a binary edge map,
// in OpenCV's retrieval order.
func (e *Extractor) Contours(edges gocv.Mat) ([]measure.Contour, error) {
	hierarchy := gocv.NewMat()
	defer hierarchy.Close()

	contours := gocv.FindContoursWithParams(edges, &hierarchy, gocv.RetrievalCComp, gocv.ChainApproxSimple)
	defer contours.Close()

	if hierarchy.Empty() || contours.Size() == 0 {
		return nil, ErrNoHierarchy
	}

	out := make([]measure.Contour, contours.Size())
	for i := range out {
		pv := contours.At(i)
		ct := measure.Contour{
			Points: pv.ToPoints(),
			Parent: int(hierarchy.GetVeciAt(0, i)[hierarchyParent]),
			Area:   gocv.ContourArea(pv),
		}
		if ct.Area >= e.minArea {
			ct.Vertices = e.approxVertices(pv)
		}
		out[i] = ct
	}
	return out, nil
}

// approxVertices counts the vertices of the Douglas-Peucker approximation with an
// epsilon proportional to the closed perimeter.
func (e *Extractor) approxVertices(pv gocv.PointVector) int {
	peri := gocv.ArcLength(pv, true)
	approx := gocv.ApproxPolyDP(pv, e.epsilon*peri, true)
	defer approx.Close()
	return approx.Size()
}
