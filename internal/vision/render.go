package vision

import (
	"fmt"
	"image"
	"image/color"

	"livegauge/internal/measure"
	"livegauge/pkg/colorutil"
	"livegauge/pkg/geometry"

	"gocv.io/x/gocv"
)

// HoleMarker is drawn at the centroid of every hole.
const HoleMarker = "H"

// Style controls overlay fonts and line widths.
type Style struct {
	Palette colorutil.Palette

	OutlineThickness int

	QuadLabelScale     float64
	QuadLabelThickness int

	CircleLabelScale     float64
	CircleLabelThickness int

	HoleLabelScale     float64
	HoleLabelThickness int

	FrameRateScale     float64
	FrameRateThickness int
	FrameRateOrigin    image.Point
}

// DefaultStyle returns the live-view overlay style.
func DefaultStyle() Style {
	return Style{
		Palette:              colorutil.DefaultPalette(),
		OutlineThickness:     2,
		QuadLabelScale:       0.5,
		QuadLabelThickness:   2,
		CircleLabelScale:     0.4,
		CircleLabelThickness: 1,
		HoleLabelScale:       0.4,
		HoleLabelThickness:   1,
		FrameRateScale:       0.6,
		FrameRateThickness:   2,
		FrameRateOrigin:      image.Point{X: 10, Y: 25},
	}
}

// Renderer draws measurements onto the display image. It only reads the results it is given.
type Renderer struct {
	unit  string
	style Style
}

// NewRenderer builds a renderer; unit is appended to every dimension label.
func NewRenderer(unit string, style Style) *Renderer {
	return &Renderer{unit: unit, style: style}
}

// Render draws the frame's quads, circles, holes and the frame rate onto img.
func (r *Renderer) Render(img *gocv.Mat, res measure.FrameResult, fps float64) {
	for _, q := range res.Quads {
		r.drawQuad(img, q)
	}
	for _, c := range res.Circles {
		r.drawCircle(img, c)
	}
	for _, h := range res.Holes {
		r.drawHole(img, h)
	}
	r.DrawFrameRate(img, fps)
}

// DrawFrameRate draws the frame-rate estimate at the fixed screen position.
func (r *Renderer) DrawFrameRate(img *gocv.Mat, fps float64) {
	s := r.style
	gocv.PutText(img, fmt.Sprintf("FPS: %.1f", fps), s.FrameRateOrigin,
		gocv.FontHersheySimplex, s.FrameRateScale, s.Palette.FrameRate, s.FrameRateThickness)
}

// QuadLabels returns the height and width label texts.
func (r *Renderer) QuadLabels(q measure.QuadMeasurement) (height, width string) {
	return fmt.Sprintf("%.1f%s", q.Height, r.unit), fmt.Sprintf("%.1f%s", q.Width, r.unit)
}

// CircleLabel returns the diameter label text.
func (r *Renderer) CircleLabel(c measure.CircleMeasurement) string {
	return fmt.Sprintf("%.3f%s", c.Diameter, r.unit)
}

func (r *Renderer) drawQuad(img *gocv.Mat, q measure.QuadMeasurement) {
	s := r.style
	corners := q.Box.Corners()
	pts := make([]image.Point, len(corners))
	for i, c := range corners {
		pts[i] = c.ImagePoint()
	}
	drawOutline(img, pts, s.Palette.QuadOutline, s.OutlineThickness)

	if !q.Calibrated {
		return
	}
	height, width := r.QuadLabels(q)
	gocv.PutText(img, height, offset(q.TopMid, 0, -10),
		gocv.FontHersheySimplex, s.QuadLabelScale, s.Palette.QuadLabel, s.QuadLabelThickness)
	gocv.PutText(img, width, offset(q.RightMid, 0, 10),
		gocv.FontHersheySimplex, s.QuadLabelScale, s.Palette.QuadLabel, s.QuadLabelThickness)
}

func (r *Renderer) drawCircle(img *gocv.Mat, c measure.CircleMeasurement) {
	s := r.style
	gocv.Circle(img, c.Circle.Center.ImagePoint(), int(c.Circle.Radius), s.Palette.CircleOutline, s.OutlineThickness)
	gocv.PutText(img, r.CircleLabel(c), offset(c.Circle.Center, -20, 0),
		gocv.FontHersheySimplex, s.CircleLabelScale, s.Palette.CircleLabel, s.CircleLabelThickness)
}

func (r *Renderer) drawHole(img *gocv.Mat, h measure.Hole) {
	s := r.style
	drawOutline(img, h.Points, s.Palette.HoleOutline, s.OutlineThickness)
	if !h.HasCentroid {
		return
	}
	at := h.Centroid.ImagePoint()
	at.X -= 10
	gocv.PutText(img, HoleMarker, at,
		gocv.FontHersheySimplex, s.HoleLabelScale, s.Palette.HoleLabel, s.HoleLabelThickness)
}

// offset shifts a label anchor before truncating it to a pixel.
func offset(p geometry.Point2D, dx, dy float64) image.Point {
	return geometry.Point2D{X: p.X + dx, Y: p.Y + dy}.ImagePoint()
}

func drawOutline(img *gocv.Mat, pts []image.Point, c color.RGBA, thickness int) {
	if len(pts) == 0 {
		return
	}
	pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer pv.Close()
	gocv.DrawContours(img, pv, -1, c, thickness)
}
