package bitmap

import (
	"image"

	"github.com/disintegration/imaging"

	"graffiti/pkg/palette"
)

// Quantize samples src onto a new canvas. The source origin is placed at
// (0, 0); canvas pixels beyond the source width or height stay black.
func Quantize(src image.Image) *Canvas {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := NewCanvas()

	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if h <= y || w <= x {
				dst.SetColor(x, y, palette.Black)
			} else {
				dst.SetColor(x, y, palette.Nearest(src.At(b.Min.X+x, b.Min.Y+y)))
			}
		}
	}

	return dst
}

// Fit shrinks src to fit inside the canvas, keeping its aspect ratio.
// Images that already fit are returned as they are.
func Fit(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= Width && b.Dy() <= Height {
		return src
	}
	return imaging.Fit(src, Width, Height, imaging.Lanczos)
}
