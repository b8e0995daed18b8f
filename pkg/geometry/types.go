// Package geometry provides the small set of planar types used by the measurement pipeline.
package geometry

import (
	"image"
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromImagePoint converts an integer pixel coordinate.
func FromImagePoint(p image.Point) Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// ImagePoint truncates toward zero, the same way the overlay positions are derived.
func (p Point2D) ImagePoint() image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Midpoint returns the arithmetic mean of a and b. It is symmetric in its arguments.
func Midpoint(a, b Point2D) Point2D {
	return Point2D{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
}

// Circle is a center and radius in pixel space.
type Circle struct {
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"`
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}
