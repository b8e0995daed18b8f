// Package measure turns extracted contours into calibrated dimensions.
//
// Everything in this package is plain Go over plain data. Shape fitting that needs
// OpenCV is reached through the Fitter interface so the measurement rules can be
// exercised without a camera or a native library.
package measure

import (
	"image"

	"livegauge/pkg/geometry"
)

// NoParent marks a top-level contour in the hierarchy.
const NoParent = -1

// Contour is one closed boundary from the edge map and its place in the two-level hierarchy.
type Contour struct {
	// Points is the raw boundary, before polygon approximation.
	Points []image.Point
	// Parent is the index of the enclosing contour, or NoParent.
	Parent int
	// Area is the enclosed area in square pixels.
	Area float64
	// Vertices is the vertex count of the approximated polygon. It is zero for
	// contours the extractor skipped as too small to approximate.
	Vertices int
}

// IsHole reports whether the contour is nested inside another contour.
func (c Contour) IsHole() bool {
	return c.Parent != NoParent
}

// Fitter fits bounding shapes and computes contour moments.
type Fitter interface {
	// MinAreaRect returns the four corners of the minimum-area oriented rectangle.
	MinAreaRect(points []image.Point) [4]geometry.Point2D
	// MinEnclosingCircle returns the smallest circle containing every point.
	MinEnclosingCircle(points []image.Point) geometry.Circle
	// Centroid returns m10/m00, m01/m00 of the contour moments, or false when m00 is zero.
	Centroid(points []image.Point) (geometry.Point2D, bool)
}
