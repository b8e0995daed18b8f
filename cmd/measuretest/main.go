// Command measuretest runs the measurement pipeline on a single image and prints what it found.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"livegauge/internal/config"
	gaugeimage "livegauge/internal/image"
	"livegauge/internal/measure"
	"livegauge/internal/vision"
)

func main() {
	imagePath := flag.String("image", "", "Path to image (PNG, JPEG, TIFF, BMP, WebP)")
	configPath := flag.String("config", "", "Config file (optional)")
	knownWidth := flag.Float64("known-width", 0, "Reference width, overrides the config")
	unit := flag.String("unit", "", "Unit suffix, overrides the config")
	outPath := flag.String("out", "", "Write the annotated image here (optional)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: measuretest -image <path> [-known-width 0.8] [-unit mm] [-out annotated.png]")
		os.Exit(1)
	}

	cfg, _, err := config.LoadDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	m := cfg.Measurement
	if *knownWidth > 0 {
		m = m.WithKnownWidth(*knownWidth)
	}
	if *unit != "" {
		m.Unit = *unit
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	img, err := gaugeimage.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded image: %dx%d pixels\n", bounds.Dx(), bounds.Dy())
	fmt.Printf("Working size: %dx%d, reference width %.3f%s\n", m.WorkWidth, m.WorkHeight, m.KnownWidth, m.Unit)
	fmt.Printf("Canny %.0f/%.0f, min area %.0f px², quad=%d vertices, circle>%d vertices\n",
		m.CannyLow, m.CannyHigh, m.MinContourArea, m.QuadVertices, m.CircleMinVertices)

	frame, err := gaugeimage.ToMat(img)
	if err != nil {
		frame.Close()
		fmt.Fprintf(os.Stderr, "Failed to convert image: %v\n", err)
		os.Exit(1)
	}
	defer frame.Close()

	pipeline := vision.NewPipeline(m, measure.NewCalibrator(), vision.DefaultStyle(), nil)
	out, err := pipeline.Process(frame)
	if err != nil {
		if errors.Is(err, vision.ErrNoHierarchy) {
			fmt.Println("\nNo contours found.")
			return
		}
		fmt.Fprintf(os.Stderr, "Measurement failed: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	printResult(out.Result, m.Unit)

	if *outPath != "" {
		rgba, err := gaugeimage.ToImage(out.Display)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to convert result: %v\n", err)
			os.Exit(1)
		}
		if err := gaugeimage.Save(*outPath, rgba); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save %s: %v\n", *outPath, err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %s\n", *outPath)
	}
}

func printResult(res measure.FrameResult, unit string) {
	fmt.Printf("\nAdmitted %d contours (%d unclassified)\n", res.Admitted, res.Unclassified)
	if res.Calibrated {
		fmt.Printf("Calibration: %.4f px/%s\n", res.PixelsPerUnit, unit)
	} else {
		fmt.Println("Calibration: none (no reference found)")
	}

	fmt.Printf("\nQuads: %d\n", len(res.Quads))
	if len(res.Quads) > 0 {
		fmt.Printf("%-4s %18s %10s %10s %12s %12s\n", "#", "Top-left", "W (px)", "H (px)", "Width", "Height")
		fmt.Println(strings.Repeat("-", 72))
		for i, q := range res.Quads {
			w, h := "-", "-"
			if q.Calibrated {
				w = fmt.Sprintf("%.2f%s", q.Width, unit)
				h = fmt.Sprintf("%.2f%s", q.Height, unit)
			}
			fmt.Printf("%-4d %18s %10.1f %10.1f %12s %12s\n", i,
				fmt.Sprintf("(%.0f, %.0f)", q.Box.TL.X, q.Box.TL.Y), q.WidthPx, q.HeightPx, w, h)
		}
	}

	fmt.Printf("\nCircles: %d\n", len(res.Circles))
	if len(res.Circles) > 0 {
		fmt.Printf("%-4s %18s %10s %12s\n", "#", "Center", "Radius", "Diameter")
		fmt.Println(strings.Repeat("-", 48))
		for i, c := range res.Circles {
			fmt.Printf("%-4d %18s %10.1f %12s\n", i,
				fmt.Sprintf("(%.0f, %.0f)", c.Circle.Center.X, c.Circle.Center.Y), c.Circle.Radius,
				fmt.Sprintf("%.3f%s", c.Diameter, unit))
		}
	}

	fmt.Printf("\nHoles: %d\n", len(res.Holes))
	for i, h := range res.Holes {
		if h.HasCentroid {
			fmt.Printf("  %d: centroid (%.1f, %.1f), %d points\n", i, h.Centroid.X, h.Centroid.Y, len(h.Points))
		} else {
			fmt.Printf("  %d: degenerate, %d points\n", i, len(h.Points))
		}
	}
}
