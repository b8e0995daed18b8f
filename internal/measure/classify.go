package measure

import "livegauge/internal/config"

// Shape is the measurement class of a contour.
type Shape int

const (
	ShapeNone   Shape = iota // Not measured; may still be a hole
	ShapeQuad                // Reference/quad candidate
	ShapeCircle              // Circular candidate
)

func (s Shape) String() string {
	switch s {
	case ShapeQuad:
		return "quad"
	case ShapeCircle:
		return "circle"
	default:
		return "none"
	}
}

// Classifier applies the area floor and the vertex-count rules.
type Classifier struct {
	minArea        float64
	quadVertices   int
	circleVertices int
}

// NewClassifier builds a classifier from the measurement settings.
func NewClassifier(cfg config.Measurement) Classifier {
	return Classifier{
		minArea:        cfg.MinContourArea,
		quadVertices:   cfg.QuadVertices,
		circleVertices: cfg.CircleMinVertices,
	}
}

// Admit reports whether a contour is large enough to be considered at all.
// Rejected contours are neither measured nor checked for holes.
func (c Classifier) Admit(ct Contour) bool {
	return ct.Area >= c.minArea
}

// Classify maps an approximated vertex count to a shape class.
// The quad class fires on exactly quadVertices, which is 5 by default: the reference
// target is detected as a pentagon but measured as its bounding rectangle.
func (c Classifier) Classify(vertices int) Shape {
	switch {
	case vertices == c.quadVertices:
		return ShapeQuad
	case vertices > c.circleVertices:
		return ShapeCircle
	default:
		return ShapeNone
	}
}
