package vision

import (
	"encoding/binary"
	"image"

	"livegauge/internal/measure"
	"livegauge/pkg/geometry"

	"gocv.io/x/gocv"
)

// Fitter fits bounding shapes and computes moments with OpenCV.
type Fitter struct{}

var _ measure.Fitter = Fitter{}

// MinAreaRect returns the corners of the minimum-area rotated rectangle. gocv hands the
// corners back already snapped to whole pixels. Order is unspecified; see geometry.OrderQuad.
func (Fitter) MinAreaRect(points []image.Point) [4]geometry.Point2D {
	pv := gocv.NewPointVectorFromPoints(points)
	defer pv.Close()

	rect := gocv.MinAreaRect(pv)

	var corners [4]geometry.Point2D
	for i := 0; i < len(corners) && i < len(rect.Points); i++ {
		corners[i] = geometry.FromImagePoint(rect.Points[i])
	}
	return corners
}

// MinEnclosingCircle returns the smallest circle containing the contour.
func (Fitter) MinEnclosingCircle(points []image.Point) geometry.Circle {
	pv := gocv.NewPointVectorFromPoints(points)
	defer pv.Close()

	x, y, r := gocv.MinEnclosingCircle(pv)
	return geometry.Circle{
		Center: geometry.Point2D{X: float64(x), Y: float64(y)},
		Radius: float64(r),
	}
}

// Centroid computes the contour's spatial moments and returns m10/m00, m01/m00.
// A contour enclosing no area has no centroid.
func (Fitter) Centroid(points []image.Point) (geometry.Point2D, bool) {
	if len(points) == 0 {
		return geometry.Point2D{}, false
	}

	mat, err := pointsMat(points)
	if err != nil {
		return geometry.Point2D{}, false
	}
	defer mat.Close()

	moments := gocv.Moments(mat, false)
	m00 := moments["m00"]
	if m00 == 0 {
		return geometry.Point2D{}, false
	}
	return geometry.Point2D{X: moments["m10"] / m00, Y: moments["m01"] / m00}, true
}

// pointsMat packs points into an Nx1 CV_32SC2 Mat, the layout OpenCV reads as a contour.
func pointsMat(points []image.Point) (gocv.Mat, error) {
	buf := make([]byte, len(points)*8)
	for i, p := range points {
		binary.NativeEndian.PutUint32(buf[i*8:], uint32(int32(p.X)))
		binary.NativeEndian.PutUint32(buf[i*8+4:], uint32(int32(p.Y)))
	}
	return gocv.NewMatFromBytes(len(points), 1, gocv.MatTypeCV32SC2, buf)
}
