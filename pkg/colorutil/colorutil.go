// Package colorutil provides the overlay colors. gocv drawing calls take RGBA and
// convert to BGR internally.
package colorutil

import "image/color"

// Base colors.
var (
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Palette assigns a color to each overlay element.
type Palette struct {
	QuadOutline   color.RGBA
	QuadLabel     color.RGBA
	CircleOutline color.RGBA
	CircleLabel   color.RGBA
	HoleOutline   color.RGBA
	HoleLabel     color.RGBA
	FrameRate     color.RGBA
}

// DefaultPalette returns the overlay colors of the live view.
func DefaultPalette() Palette {
	return Palette{
		QuadOutline:   Green,
		QuadLabel:     Blue,
		CircleOutline: Red,
		CircleLabel:   Red,
		HoleOutline:   Yellow,
		HoleLabel:     Yellow,
		FrameRate:     Green,
	}
}
