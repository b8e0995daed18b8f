package geometry

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name string
		a, b Point2D
		want Point2D
	}{
		{"origin", Point2D{}, Point2D{}, Point2D{}},
		{"axis", Point2D{X: 0, Y: 0}, Point2D{X: 10, Y: 0}, Point2D{X: 5, Y: 0}},
		{"odd sum", Point2D{X: 1, Y: 2}, Point2D{X: 4, Y: 7}, Point2D{X: 2.5, Y: 4.5}},
		{"negative", Point2D{X: -3, Y: 8}, Point2D{X: 3, Y: -8}, Point2D{X: 0, Y: 0}},
		{"fractional", Point2D{X: 0.1, Y: 0.7}, Point2D{X: 0.3, Y: 1.9}, Point2D{X: (0.1 + 0.3) * 0.5, Y: (0.7 + 1.9) * 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Midpoint(tt.a, tt.b))
			assert.Equal(t, Midpoint(tt.a, tt.b), Midpoint(tt.b, tt.a))
		})
	}
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Point2D{X: 0, Y: 0}.Distance(Point2D{X: 3, Y: 4}), 1e-12)
	assert.InDelta(t, 0.0, Point2D{X: 2, Y: 2}.Distance(Point2D{X: 2, Y: 2}), 1e-12)
}

func TestOrderQuadAxisAligned(t *testing.T) {
	tl := Point2D{X: 100, Y: 50}
	tr := Point2D{X: 300, Y: 50}
	br := Point2D{X: 300, Y: 150}
	bl := Point2D{X: 100, Y: 150}
	want := Quad{TL: tl, TR: tr, BR: br, BL: bl}

	for _, perm := range permutations([4]Point2D{tl, tr, br, bl}) {
		assert.Equal(t, want, OrderQuad(perm), "input order %v", perm)
	}
}

func TestOrderQuadRotated(t *testing.T) {
	// Rectangle 200x80 rotated 20 degrees about (400, 300).
	angle := 20 * math.Pi / 180
	cos, sin := math.Cos(angle), math.Sin(angle)
	var corners [4]Point2D
	for i, c := range [][2]float64{{-100, -40}, {100, -40}, {100, 40}, {-100, 40}} {
		corners[i] = Point2D{
			X: 400 + c[0]*cos - c[1]*sin,
			Y: 300 + c[0]*sin + c[1]*cos,
		}
	}

	for _, perm := range permutations(corners) {
		q := OrderQuad(perm)
		assertExtremes(t, perm, q)
		assert.InDelta(t, 80.0, q.Height(), 1e-9)
		assert.InDelta(t, 200.0, q.Width(), 1e-9)
	}
}

func TestOrderQuadIrregularConvex(t *testing.T) {
	pts := [4]Point2D{{X: 12, Y: 3}, {X: 95, Y: 20}, {X: 80, Y: 70}, {X: 5, Y: 60}}
	for _, perm := range permutations(pts) {
		assertExtremes(t, perm, OrderQuad(perm))
	}
}

func TestQuadEdgeMidpoints(t *testing.T) {
	q := OrderQuad([4]Point2D{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 20}, {X: 0, Y: 20}})
	assert.Equal(t, Point2D{X: 20, Y: 0}, q.TopMid())
	assert.Equal(t, Point2D{X: 20, Y: 20}, q.BottomMid())
	assert.Equal(t, Point2D{X: 0, Y: 10}, q.LeftMid())
	assert.Equal(t, Point2D{X: 40, Y: 10}, q.RightMid())
	assert.InDelta(t, 20.0, q.Height(), 1e-12)
	assert.InDelta(t, 40.0, q.Width(), 1e-12)
}

func TestImagePointTruncates(t *testing.T) {
	assert.Equal(t, image.Point{X: 12, Y: 7}, Point2D{X: 12.9, Y: 7.2}.ImagePoint())
}

// assertExtremes checks the sum/difference definition of the canonical order.
func assertExtremes(t *testing.T, pts [4]Point2D, q Quad) {
	t.Helper()
	for _, p := range pts {
		assert.LessOrEqual(t, q.TL.X+q.TL.Y, p.X+p.Y)
		assert.GreaterOrEqual(t, q.BR.X+q.BR.Y, p.X+p.Y)
		assert.LessOrEqual(t, q.TR.Y-q.TR.X, p.Y-p.X)
		assert.GreaterOrEqual(t, q.BL.Y-q.BL.X, p.Y-p.X)
	}
}

func permutations(pts [4]Point2D) [][4]Point2D {
	var out [][4]Point2D
	var permute func(k int, a [4]Point2D)
	permute = func(k int, a [4]Point2D) {
		if k == len(a) {
			out = append(out, a)
			return
		}
		for i := k; i < len(a); i++ {
			a[k], a[i] = a[i], a[k]
			permute(k+1, a)
			a[k], a[i] = a[i], a[k]
		}
	}
	permute(0, pts)
	return out
}
