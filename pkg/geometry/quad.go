package geometry

import "gonum.org/v1/gonum/floats"

// Quad is four corners in canonical order: top-left, top-right, bottom-right, bottom-left.
// Build it with OrderQuad; the ordering never depends on the input order.
type Quad struct {
	TL Point2D `json:"tl"`
	TR Point2D `json:"tr"`
	BR Point2D `json:"br"`
	BL Point2D `json:"bl"`
}

// OrderQuad orders four corners by coordinate sums and differences.
//
// The top-left corner has the smallest x+y and the bottom-right the largest.
// The top-right corner has the smallest y-x and the bottom-left the largest.
// Ties resolve to the first candidate in input order.
func OrderQuad(pts [4]Point2D) Quad {
	sums := make([]float64, len(pts))
	diffs := make([]float64, len(pts))
	for i, p := range pts {
		sums[i] = p.X + p.Y
		diffs[i] = p.Y - p.X
	}
	return Quad{
		TL: pts[floats.MinIdx(sums)],
		TR: pts[floats.MinIdx(diffs)],
		BR: pts[floats.MaxIdx(sums)],
		BL: pts[floats.MaxIdx(diffs)],
	}
}

// Corners returns the corners in canonical order.
func (q Quad) Corners() [4]Point2D {
	return [4]Point2D{q.TL, q.TR, q.BR, q.BL}
}

// TopMid returns the midpoint of the top edge.
func (q Quad) TopMid() Point2D { return Midpoint(q.TL, q.TR) }

// BottomMid returns the midpoint of the bottom edge.
func (q Quad) BottomMid() Point2D { return Midpoint(q.BL, q.BR) }

// LeftMid returns the midpoint of the left edge.
func (q Quad) LeftMid() Point2D { return Midpoint(q.TL, q.BL) }

// RightMid returns the midpoint of the right edge.
func (q Quad) RightMid() Point2D { return Midpoint(q.TR, q.BR) }

// Height is the distance between the top and bottom edge midpoints.
func (q Quad) Height() float64 {
	return q.TopMid().Distance(q.BottomMid())
}

// Width is the distance between the left and right edge midpoints.
func (q Quad) Width() float64 {
	return q.LeftMid().Distance(q.RightMid())
}
