package main

import (
	"image"
	imgcolor "image/color"
)

// solidify snaps anti-aliased coverage to a hard edge: pixels at least half
// opaque become c, everything else becomes transparent.
func solidify(src image.Image, c imgcolor.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			if a >= 0x8000 {
				dst.SetRGBA(x, y, c)
			}
		}
	}

	return dst
}
