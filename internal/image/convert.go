package image

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"gocv.io/x/gocv"
)

// ToMat converts a Go image to a Mat. *image.Gray becomes a single-channel Mat so the
// pipeline treats it as grayscale; everything else becomes 3-channel BGR.
func ToMat(img image.Image) (gocv.Mat, error) {
	if gray, ok := img.(*image.Gray); ok {
		return grayToMat(gray)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return gocv.NewMat(), fmt.Errorf("image has no pixels: %dx%d", width, height)
	}

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)

	forEachStripe(height, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < width; x++ {
				r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
				mat.SetUCharAt(y, x*3+0, uint8(b>>8))
				mat.SetUCharAt(y, x*3+1, uint8(g>>8))
				mat.SetUCharAt(y, x*3+2, uint8(r>>8))
			}
		}
	})

	return mat, nil
}

func grayToMat(gray *image.Gray) (gocv.Mat, error) {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return gocv.NewMat(), fmt.Errorf("image has no pixels: %dx%d", width, height)
	}

	pix := make([]byte, width*height)
	for y := 0; y < height; y++ {
		row := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(pix[y*width:(y+1)*width], gray.Pix[row:row+width])
	}
	return gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC1, pix)
}

// ToImage converts a 1- or 3-channel 8-bit Mat to an RGBA image.
func ToImage(mat gocv.Mat) (*image.RGBA, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("empty mat")
	}
	channels := mat.Channels()
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}

	h, w := mat.Rows(), mat.Cols()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stride := img.Stride

	forEachStripe(h, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			rowOffset := y * stride
			for x := 0; x < w; x++ {
				o := rowOffset + x*4
				if channels == 1 {
					v := mat.GetUCharAt(y, x)
					img.Pix[o+0], img.Pix[o+1], img.Pix[o+2] = v, v, v
				} else {
					img.Pix[o+0] = mat.GetUCharAt(y, x*3+2)
					img.Pix[o+1] = mat.GetUCharAt(y, x*3+1)
					img.Pix[o+2] = mat.GetUCharAt(y, x*3+0)
				}
				img.Pix[o+3] = 255
			}
		}
	})

	return img, nil
}

// forEachStripe splits rows into one horizontal stripe per CPU and runs fn on each.
func forEachStripe(rows int, fn func(yStart, yEnd int)) {
	workers := runtime.NumCPU()
	perWorker := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * perWorker
		if start >= rows {
			break
		}
		end := min(start+perWorker, rows)

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			fn(yStart, yEnd)
		}(start, end)
	}
	wg.Wait()
}
