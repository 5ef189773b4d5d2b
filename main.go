package main

import (
	"bytes"
	"fmt"
	"image"
	imgcolor "image/color"
	"image/png"
	"os"

	"github.com/fatih/color"
	"github.com/fogleman/gg"
)

const (
	ICON_SIZE = 32
	ARC_INSET = 2
	ARC_WIDTH = 3

	// Degrees, 0 at 3 o'clock, growing clockwise on screen
	ARC_START = 0
	ARC_END   = 270
)

const outputPath = "src/resources/images/spinner.png"

var (
	// Indigo (#6366F1)
	arcColor = imgcolor.RGBA{99, 102, 241, 255}

	// Console colors
	green = color.New(color.FgGreen, color.Bold)
	red   = color.New(color.FgRed, color.Bold)
)

func main() {
	os.Exit(run())
}

// run generates the spinner at outputPath and returns the process exit code.
func run() int {
	if err := generate(outputPath); err != nil {
		red.Fprintf(color.Error, "✗ Failed to create spinner: %s\n", err)
		return 1
	}

	green.Fprintf(color.Output, "✓ Spinner PNG created: %s\n", outputPath)
	return 0
}

// generate renders the spinner and writes it to path. The image is encoded
// in memory first so a failed encode never leaves a truncated file behind.
func generate(path string) error {
	buffer := bytes.NewBuffer(nil)
	if err := png.Encode(buffer, renderSpinner()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}

	return nil
}

// renderSpinner draws a 3/4 arc on a transparent canvas. The stroke sits
// inside the inset bounding box, its outer edge touching the box, and every
// pixel ends up either arcColor or fully transparent.
func renderSpinner() image.Image {
	dc := gg.NewContext(ICON_SIZE, ICON_SIZE)

	center := float64(ICON_SIZE) / 2
	radius := float64(ICON_SIZE-2*ARC_INSET)/2 - float64(ARC_WIDTH)/2

	dc.SetRGBA255(int(arcColor.R), int(arcColor.G), int(arcColor.B), int(arcColor.A))
	dc.SetLineWidth(ARC_WIDTH)
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawArc(center, center, radius, gg.Radians(ARC_START), gg.Radians(ARC_END))
	dc.Stroke()

	return solidify(dc.Image(), arcColor)
}
